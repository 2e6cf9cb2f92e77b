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

package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/statsml/statsml/manager/types"
	"github.com/statsml/statsml/pkg/dferrors"
)

type ErrorResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewErrorResponse returns the error body of err.
func NewErrorResponse(code int, err error) ErrorResponse {
	return ErrorResponse{
		Status:       types.StatusError,
		Message:      http.StatusText(code),
		ErrorMessage: err.Error(),
	}
}

// StatusCode returns the http status of err.
func StatusCode(err error) int {
	if code, ok := dferrors.CodeOf(err); ok {
		switch code {
		case dferrors.CodeValidation:
			return http.StatusBadRequest
		case dferrors.CodeNotFound:
			return http.StatusNotFound
		case dferrors.CodeInvalidState:
			return http.StatusConflict
		default:
			return http.StatusInternalServerError
		}
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err.IsType(gin.ErrorTypeBind) {
			c.JSON(http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, err.Err))
			return
		}

		code := StatusCode(err.Err)
		c.JSON(code, NewErrorResponse(code, err.Err))
	}
}
