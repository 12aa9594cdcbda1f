package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"axiselect.app/web/internal/channel"
)

// CodeDelivery reports a successfully requested verification code.
type CodeDelivery struct {
	// Message is the server's user-facing confirmation.
	Message string
	// DevCode carries the 6-digit code when the server discloses it
	// (development deployments only); empty otherwise.
	DevCode string
}

const (
	msgCodeSent      = "验证码已发送到您的邮箱，请查收。验证码有效期为10分钟，请及时输入。"
	msgSendFailed    = "发送验证码失败"
	msgSendCheckMail = "发送验证码失败，请检查邮箱地址"
	msgCodeWrong     = "验证码错误"
)

var sixDigits = regexp.MustCompile(`(\d{6})`)

type rpcEnvelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	ErrMsg  string `json:"error"`
	Code    string `json:"code"`
}

func (e rpcEnvelope) ok() bool {
	return e.Success != nil && *e.Success
}

func (e rpcEnvelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrMsg
}

// SendVerificationCode asks the platform to email a 6-digit code to email,
// attributing the request to ch. The returned error, when non-nil, always
// carries a displayable message.
func (c *Client) SendVerificationCode(ctx context.Context, email string, ch channel.Code) (CodeDelivery, error) {
	if c.baseURL == "" {
		return fakeCodeDelivery(), nil
	}

	status, env, err := c.callRPC(ctx, "send-verification-code", map[string]string{
		"email":        email,
		"channel_code": string(ch),
	})
	if err != nil {
		return CodeDelivery{}, err
	}

	msg := env.text()
	if looksLikeAuthProblem(msg) {
		c.log.Error("verification rpc rejected the api key", zap.Int("status", status))
		return CodeDelivery{}, userErr(MsgConfig, nil)
	}
	switch {
	case status == http.StatusTooManyRequests:
		if msg == "" {
			msg = MsgRateLimited
		}
		return CodeDelivery{}, userErr(msg, nil)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		c.log.Error("verification rpc auth failure", zap.Int("status", status))
		return CodeDelivery{}, userErr(MsgConfig, nil)
	case status >= 400 && status < 500:
		if msg == "" {
			msg = msgSendCheckMail
		}
		return CodeDelivery{}, userErr(msg, nil)
	case status >= 500:
		c.log.Error("verification rpc server error", zap.Int("status", status), zap.String("message", msg))
		if msg == "" {
			msg = MsgServerError
		}
		return CodeDelivery{}, userErr(msg, nil)
	}

	if !env.ok() {
		if msg == "" {
			msg = msgSendFailed
		}
		return CodeDelivery{}, userErr(sanitizeMessage(msg), nil)
	}

	delivery := CodeDelivery{Message: msg, DevCode: env.Code}
	if delivery.Message == "" {
		delivery.Message = msgCodeSent
	}
	// Development servers embed the code in free text instead of the code
	// field; dig it out for parity with the mobile client.
	if delivery.DevCode == "" && msg != "" {
		if m := sixDigits.FindString(msg); m != "" {
			delivery.DevCode = m
		}
	}
	return delivery, nil
}

// VerifyCode submits the 6-digit code for email. nil means verified.
func (c *Client) VerifyCode(ctx context.Context, email, code string) error {
	if c.baseURL == "" {
		if code == fakeVerificationCode {
			return nil
		}
		return userErr(msgCodeWrong, nil)
	}

	status, env, err := c.callRPC(ctx, "verify-code", map[string]string{
		"email": email,
		"code":  code,
	})
	if err != nil {
		return err
	}

	msg := env.text()
	if looksLikeAuthProblem(msg) {
		c.log.Error("verify rpc rejected the api key", zap.Int("status", status))
		return userErr(MsgConfig, nil)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		c.log.Error("verify rpc auth failure", zap.Int("status", status))
		return userErr(MsgConfig, nil)
	}
	if env.ok() {
		return nil
	}
	if msg == "" {
		msg = msgCodeWrong
	}
	return userErr(sanitizeMessage(msg), nil)
}

// callRPC posts a JSON body to an edge function and decodes the envelope.
// Transport failures and unparsable bodies come back as classified *Error
// values; HTTP status handling stays with the caller because send and verify
// surface different copy.
func (c *Client) callRPC(ctx context.Context, name string, body map[string]string) (int, rpcEnvelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, rpcEnvelope{}, userErr(MsgCheckNetwork, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.functionURL(name), bytes.NewReader(payload))
	if err != nil {
		return 0, rpcEnvelope{}, userErr(MsgCheckNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if isNetworkError(err) {
			return 0, rpcEnvelope{}, userErr(MsgNetwork, err)
		}
		return 0, rpcEnvelope{}, userErr(MsgCheckNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, rpcEnvelope{}, userErr(MsgNetwork, err)
	}

	var env rpcEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		text := string(raw)
		c.log.Error("rpc returned non-json body",
			zap.String("function", name),
			zap.Int("status", resp.StatusCode))
		if looksLikeAuthProblem(text) {
			return resp.StatusCode, rpcEnvelope{}, userErr(MsgConfig, nil)
		}
		if resp.StatusCode >= 500 {
			return resp.StatusCode, rpcEnvelope{}, userErr(MsgServerError, nil)
		}
		return resp.StatusCode, rpcEnvelope{}, userErr(MsgBadResponse, nil)
	}
	return resp.StatusCode, env, nil
}

// trimmedEmailValid is a light shape check, mirroring the form-side
// validation: something@something.something with no spaces.
func trimmedEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}
	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// ValidEmail reports whether email passes the local shape check used before
// any network call is made.
func ValidEmail(email string) bool { return trimmedEmailValid(email) }
