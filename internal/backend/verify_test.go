package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axiselect.app/web/internal/channel"
)

func rpcServer(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", nil)
}

func TestSendVerificationCodeSuccess(t *testing.T) {
	c := rpcServer(t, http.StatusOK, `{"success":true,"message":"验证码已发送"}`)

	d, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
	require.NoError(t, err)
	assert.Equal(t, "验证码已发送", d.Message)
	assert.Empty(t, d.DevCode)
}

func TestSendVerificationCodeExtractsDevCode(t *testing.T) {
	c := rpcServer(t, http.StatusOK, `{"success":true,"message":"测试环境验证码：135790，10分钟内有效"}`)

	d, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelB)
	require.NoError(t, err)
	assert.Equal(t, "135790", d.DevCode)
}

func TestSendVerificationCodeRateLimited(t *testing.T) {
	c := rpcServer(t, http.StatusTooManyRequests, `{"success":false,"error":"请求过于频繁，请60秒后再试"}`)

	_, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
	require.Error(t, err)
	assert.Equal(t, "请求过于频繁，请60秒后再试", UserMessage(err))
}

func TestSendVerificationCodeRateLimitedWithoutMessage(t *testing.T) {
	c := rpcServer(t, http.StatusTooManyRequests, `{"success":false}`)

	_, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
	require.Error(t, err)
	assert.Equal(t, MsgRateLimited, UserMessage(err))
}

func TestSendVerificationCodeAuthFailureHidesDetail(t *testing.T) {
	for name, tc := range map[string]struct {
		status int
		body   string
	}{
		"401":         {http.StatusUnauthorized, `{"success":false,"error":"Unauthorized"}`},
		"403":         {http.StatusForbidden, `{"success":false}`},
		"jwt message": {http.StatusBadRequest, `{"success":false,"error":"invalid JWT token"}`},
	} {
		t.Run(name, func(t *testing.T) {
			c := rpcServer(t, tc.status, tc.body)
			_, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
			require.Error(t, err)
			assert.Equal(t, MsgConfig, UserMessage(err))
		})
	}
}

func TestSendVerificationCodeServerError(t *testing.T) {
	c := rpcServer(t, http.StatusInternalServerError, `{"success":false}`)

	_, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
	require.Error(t, err)
	assert.Equal(t, MsgServerError, UserMessage(err))
}

func TestSendVerificationCodeNonJSONBody(t *testing.T) {
	c := rpcServer(t, http.StatusOK, "upstream timeout")

	_, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
	require.Error(t, err)
	assert.Equal(t, MsgBadResponse, UserMessage(err))
}

func TestSendVerificationCodeSampleMode(t *testing.T) {
	c := NewClient("", "", nil)

	d, err := c.SendVerificationCode(context.Background(), "a@b.com", channel.ChannelA)
	require.NoError(t, err)
	assert.Equal(t, fakeVerificationCode, d.DevCode)
}

func TestVerifyCodeSuccess(t *testing.T) {
	c := rpcServer(t, http.StatusOK, `{"success":true}`)
	require.NoError(t, c.VerifyCode(context.Background(), "a@b.com", "123456"))
}

func TestVerifyCodeWrong(t *testing.T) {
	c := rpcServer(t, http.StatusBadRequest, `{"success":false,"error":"验证码错误或已过期"}`)

	err := c.VerifyCode(context.Background(), "a@b.com", "000000")
	require.Error(t, err)
	assert.Equal(t, "验证码错误或已过期", UserMessage(err))
}

func TestVerifyCodeWrongWithoutMessage(t *testing.T) {
	c := rpcServer(t, http.StatusBadRequest, `{"success":false}`)

	err := c.VerifyCode(context.Background(), "a@b.com", "000000")
	require.Error(t, err)
	assert.Equal(t, msgCodeWrong, UserMessage(err))
}

func TestVerifyCodeAuthFailure(t *testing.T) {
	c := rpcServer(t, http.StatusUnauthorized, `{"success":false,"error":"Unauthorized"}`)

	err := c.VerifyCode(context.Background(), "a@b.com", "123456")
	require.Error(t, err)
	assert.Equal(t, MsgConfig, UserMessage(err))
}

func TestVerifyCodeSampleMode(t *testing.T) {
	c := NewClient("", "", nil)
	require.NoError(t, c.VerifyCode(context.Background(), "a@b.com", fakeVerificationCode))

	err := c.VerifyCode(context.Background(), "a@b.com", "111111")
	require.Error(t, err)
	assert.Equal(t, msgCodeWrong, UserMessage(err))
}

func TestSanitizeMessageHidesVendorName(t *testing.T) {
	assert.Equal(t, MsgCheckNetwork, sanitizeMessage("supabase connection refused"))
	assert.Equal(t, "验证码错误", sanitizeMessage("验证码错误"))
}
