package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBasicMarkdown(t *testing.T) {
	got := string(Render("最快 **30 天** 可完成"))
	assert.Contains(t, got, "<strong>30 天</strong>")
}

func TestRenderStripsScript(t *testing.T) {
	got := string(Render(`点这里 <script>alert(1)</script>`))
	assert.NotContains(t, got, "<script")
	assert.Contains(t, got, "点这里")
}

func TestRenderLinksGetNoFollow(t *testing.T) {
	got := string(Render("[帮助中心](https://help.example.com)"))
	assert.Contains(t, got, `rel="nofollow"`)
	assert.Contains(t, got, `href="https://help.example.com"`)
}

func TestRenderHardWraps(t *testing.T) {
	got := string(Render("第一行\n第二行"))
	assert.Contains(t, got, "<br")
}
