// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"strings"
	"time"

	luxlog "github.com/luxfi/log"
	"go.uber.org/zap"
)

const bannerWidth = 35

var Logger *UserLog

// UserLog writes operator-facing lines to a writer (stdout in the CLI) and
// mirrors the notable ones into the structured log.
type UserLog struct {
	log    luxlog.Logger
	writer io.Writer
}

func NewUserLog(log luxlog.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = &UserLog{
			log:    log,
			writer: userwriter,
		}
	}
}

func (ul *UserLog) Writer() io.Writer {
	return ul.writer
}

func (ul *UserLog) println(line string) {
	_, _ = fmt.Fprintln(ul.writer, line)
}

// PrintToUser writes a formatted line without logging it
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.println(fmt.Sprintf(msg, args...))
}

// PrintHeader frames the name of the step about to run
func (ul *UserLog) PrintHeader(header string) {
	rule := strings.Repeat("=", bannerWidth)
	ul.println("\n" + rule + "\n\n    " + luxlog.Bold.Wrap(header) + "\n\n" + rule + "\n")
	ul.log.Info("step", zap.String("name", header))
}

func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	line := fmt.Sprintf(msg, args...)
	ul.println(luxlog.Green.Wrap("✓") + " " + line)
	ul.log.Info(line)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	line := fmt.Sprintf(msg, args...)
	ul.println(luxlog.Red.Wrap("✗") + " " + line)
	ul.log.Error(line)
}

// PrintWarning is for conditions the operator has to act on by hand
func (ul *UserLog) PrintWarning(msg string, args ...interface{}) {
	line := fmt.Sprintf(msg, args...)
	ul.println(luxlog.Yellow.Wrap("WARNING: " + line))
	ul.log.Warn(line)
}

// StepTracker reports one workflow step with its duration
type StepTracker struct {
	ul    *UserLog
	name  string
	start time.Time
}

func NewStepTracker(ul *UserLog) *StepTracker {
	return &StepTracker{ul: ul}
}

func (st *StepTracker) Start(name string) {
	st.name = name
	st.start = time.Now()
	st.ul.PrintHeader(name)
}

func (st *StepTracker) seconds() float64 {
	return time.Since(st.start).Seconds()
}

func (st *StepTracker) Complete() {
	st.ul.GreenCheckmarkToUser("%s (%.1fs)", st.name, st.seconds())
}

func (st *StepTracker) Failed(reason string) {
	st.ul.RedXToUser("%s (%.1fs) - FAILED: %s", st.name, st.seconds(), reason)
}
