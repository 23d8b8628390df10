// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keypair reads and writes ed25519 keypairs in the Solana CLI
// keypair file format: a JSON array of the 64 secret key bytes.
package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/luxfi/fleet/pkg/constants"
	"github.com/mr-tron/base58"
	"github.com/spf13/afero"
)

type Keypair struct {
	private ed25519.PrivateKey
}

// Generate creates a keypair from crypto/rand
func Generate() (*Keypair, error) {
	return generateFrom(rand.Reader)
}

func generateFrom(r io.Reader) (*Keypair, error) {
	_, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("could not generate keypair: %w", err)
	}
	return &Keypair{private: priv}, nil
}

// PublicKey returns the base58 encoded public key
func (k *Keypair) PublicKey() string {
	return base58.Encode(k.private.Public().(ed25519.PublicKey))
}

func (k *Keypair) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(k.private))
	for i, b := range k.private {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}

func (k *Keypair) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if len(ints) != ed25519.PrivateKeySize {
		return fmt.Errorf("keypair must have %d bytes, got %d", ed25519.PrivateKeySize, len(ints))
	}
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	for i, v := range ints {
		if v < 0 || v > 255 {
			return fmt.Errorf("keypair byte %d out of range: %d", i, v)
		}
		priv[i] = byte(v)
	}
	k.private = priv
	return nil
}

// Load reads a keypair file from fs
func Load(fs afero.Fs, path string) (*Keypair, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	k := &Keypair{}
	if err := json.Unmarshal(data, k); err != nil {
		return nil, fmt.Errorf("invalid keypair file %s: %w", path, err)
	}
	return k, nil
}

// ReadPublicKey loads the keypair at path and returns its public key
func ReadPublicKey(fs afero.Fs, path string) (string, error) {
	k, err := Load(fs, path)
	if err != nil {
		return "", err
	}
	return k.PublicKey(), nil
}

// TempFile is a keypair written to a temporary file that must be removed
// with Remove once the caller is done with it.
type TempFile struct {
	fs   afero.Fs
	Path string
}

// WriteTemp writes k to a new user-only temp file under dir
func WriteTemp(fs afero.Fs, dir string, k *Keypair) (*TempFile, error) {
	data, err := json.Marshal(k)
	if err != nil {
		return nil, err
	}
	f, err := afero.TempFile(fs, dir, constants.StagingKeypairPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: could not create temp keypair file: %w", constants.ErrIO, err)
	}
	tf := &TempFile{fs: fs, Path: filepath.Clean(f.Name())}
	if err := fs.Chmod(tf.Path, constants.UserOnlyReadWrite); err != nil {
		_ = f.Close()
		_ = tf.Remove()
		return nil, fmt.Errorf("%w: %w", constants.ErrIO, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = tf.Remove()
		return nil, fmt.Errorf("%w: could not write temp keypair file: %w", constants.ErrIO, err)
	}
	if err := f.Close(); err != nil {
		_ = tf.Remove()
		return nil, fmt.Errorf("%w: %w", constants.ErrIO, err)
	}
	return tf, nil
}

// Remove deletes the temp file. Removing twice is not an error.
func (t *TempFile) Remove() error {
	return t.fs.RemoveAll(t.Path)
}
