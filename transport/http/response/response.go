package response

import (
	"encoding/json"
	"net/http"

	"saylamc/config"
	"saylamc/shared/constant"
	"saylamc/shared/failure"
	"saylamc/shared/logger"
)

// Every API response carries a success flag alongside the data, error or
// message field so clients can branch without inspecting status codes.
type Data[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data,omitempty"`
}

type DataMessage[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Message *string `json:"message,omitempty"`
}

type Error struct {
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

type Message struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a successful response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: true, Message: &message})
}

// WithJSON sends a successful response wrapping the given payload in the data field
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Success: true, Data: &jsonPayload})
}

// WithJSONMessage sends a successful response carrying both a payload and a message
func WithJSONMessage(writer http.ResponseWriter, code int, jsonPayload interface{}, message string) {
	response(writer, code, DataMessage[any]{Success: true, Data: &jsonPayload, Message: &message})
}

// WithPayload sends the payload as-is, for shapes that define their own top-level fields
func WithPayload(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithError sends a response with an error message. Internal errors keep
// their detail only in development; everywhere else the chain is logged and
// the client gets a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError && config.Get().Server.Env != constant.ServerEnvDevelopment {
		logger.ErrorWithStack(err)

		errMsg = constant.ResponseErrorInternalServer
	}

	response(writer, code, Error{Success: false, Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	msg := constant.ResponseErrorRequestLimitExceeded

	response(writer, http.StatusTooManyRequests, Error{Success: false, Error: &msg})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	msg := constant.ResponseErrorPrepareShutdown

	response(writer, http.StatusServiceUnavailable, Error{Success: false, Error: &msg})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	msg := constant.ResponseErrorUnhealthy

	response(writer, http.StatusServiceUnavailable, Error{Success: false, Error: &msg})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
