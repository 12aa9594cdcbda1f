package backend

import (
	"errors"
	"fmt"
	"strings"
)

// User-facing messages. The product surfaces Chinese copy; internal detail
// stays in logs. Auth failures deliberately read as a configuration problem:
// a rejected static key is an operator mistake, not something the visitor can
// correct, and the vendor name never reaches the page.
const (
	MsgConfig       = "配置错误：访问密钥不正确。请联系管理员。"
	MsgRateLimited  = "请求过于频繁，请稍后再试"
	MsgServerError  = "服务器错误，请稍后重试"
	MsgBadResponse  = "服务器响应格式错误，请稍后重试"
	MsgNetwork      = "网络连接失败，请检查网络后重试"
	MsgCheckNetwork = "请打开网络后再尝试"
)

// Error is a backend failure carrying a message safe to show the visitor
// alongside the underlying cause for logs.
type Error struct {
	// UserMessage is what the page displays. Never contains hostnames,
	// status-line detail, or the backend vendor's name.
	UserMessage string
	// Err is the internal cause, possibly nil for pure protocol failures.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend: %s: %v", e.UserMessage, e.Err)
	}
	return "backend: " + e.UserMessage
}

func (e *Error) Unwrap() error { return e.Err }

// userErr wraps cause with a user-facing message.
func userErr(msg string, cause error) *Error {
	return &Error{UserMessage: msg, Err: cause}
}

// UserMessage extracts the displayable message from err, falling back to a
// generic retry hint for errors that never got classified.
func UserMessage(err error) string {
	var be *Error
	if errors.As(err, &be) && be.UserMessage != "" {
		return be.UserMessage
	}
	return MsgCheckNetwork
}

// networkErrorHints are substrings of transport-level failures. Matching any
// of them rewrites the error to one generic connectivity message so internal
// hostnames never leak to the page.
var networkErrorHints = []string{
	"unable to resolve host",
	"no address associated with hostname",
	"no such host",
	"failed to connect",
	"connection refused",
	"connection reset",
	"timeout",
	"network",
	"broken pipe",
	"eof",
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, hint := range networkErrorHints {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}

// looksLikeAuthProblem matches token-related phrasing in a response body or
// message. The platform reports a bad static key as a JWT failure, which in
// practice means the deployment is misconfigured.
func looksLikeAuthProblem(s string) bool {
	return strings.Contains(strings.ToLower(s), "jwt")
}

// sanitizeMessage strips server messages that would expose infrastructure
// detail, replacing them with the generic connectivity hint.
func sanitizeMessage(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return MsgCheckNetwork
	}
	lower := strings.ToLower(msg)
	for _, hint := range []string{"supabase", "network", "connection", "unable to resolve host", "failed to connect", "timeout", "no address associated with hostname"} {
		if strings.Contains(lower, hint) {
			return MsgCheckNetwork
		}
	}
	return msg
}
