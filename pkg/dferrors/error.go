/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dferrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers and transports.
type Code int

const (
	// CodeValidation is a malformed or incomplete request.
	CodeValidation Code = iota + 1000

	// CodeNotFound is an unknown model or run.
	CodeNotFound

	// CodeInvalidState is an operation not allowed in the current run status.
	CodeInvalidState

	// CodeTrainingFailure is a failure while fitting or serializing a pipeline.
	CodeTrainingFailure

	// CodePersistence is a failed store operation, rolled back.
	CodePersistence
)

func (c Code) String() string {
	switch c {
	case CodeValidation:
		return "ValidationError"
	case CodeNotFound:
		return "NotFoundError"
	case CodeInvalidState:
		return "InvalidState"
	case CodeTrainingFailure:
		return "TrainingFailure"
	case CodePersistence:
		return "PersistenceError"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

type DfError struct {
	Code    Code
	Message string
}

func (s *DfError) Error() string {
	return s.Message
}

func New(code Code, msg string) *DfError {
	return &DfError{
		Code:    code,
		Message: msg,
	}
}

func Newf(code Code, format string, a ...any) *DfError {
	return &DfError{
		Code:    code,
		Message: fmt.Sprintf(format, a...),
	}
}

// CheckError reports whether any error in err's chain is a DfError with code.
func CheckError(err error, code Code) bool {
	if err == nil {
		return false
	}

	var e *DfError
	return errors.As(err, &e) && e.Code == code
}

// CodeOf returns the code of the first DfError in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *DfError
	if errors.As(err, &e) {
		return e.Code, true
	}

	return 0, false
}

// IsValidation checks the error is a validation error or not.
func IsValidation(err error) bool {
	return CheckError(err, CodeValidation)
}

// IsNotFound checks the error is a not found error or not.
func IsNotFound(err error) bool {
	return CheckError(err, CodeNotFound)
}

// IsInvalidState checks the error is an invalid state error or not.
func IsInvalidState(err error) bool {
	return CheckError(err, CodeInvalidState)
}

// IsTrainingFailure checks the error is a training failure or not.
func IsTrainingFailure(err error) bool {
	return CheckError(err, CodeTrainingFailure)
}

// IsPersistence checks the error is a persistence error or not.
func IsPersistence(err error) bool {
	return CheckError(err, CodePersistence)
}
