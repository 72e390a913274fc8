package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectLanguage 验证语言检测的代码映射
func TestDetectLanguage(t *testing.T) {
	t.Run("西班牙语", func(t *testing.T) {
		text := "Desarrollador de software con cinco años de experiencia en aplicaciones web. " +
			"Me especializo en el desarrollo de sistemas distribuidos y bases de datos relacionales."
		assert.Equal(t, "es", DetectLanguage(text))
	})

	t.Run("英语", func(t *testing.T) {
		text := "Software developer with five years of experience building web applications " +
			"and distributed systems for enterprise customers around the world."
		assert.Equal(t, "en", DetectLanguage(text))
	})

	t.Run("空文本", func(t *testing.T) {
		assert.Equal(t, LangUnknown, DetectLanguage(""), "空文本应返回unknown")
	})

	t.Run("其他语言透传代码", func(t *testing.T) {
		text := "Разработчик программного обеспечения с опытом создания веб-приложений и распределённых систем."
		code := DetectLanguage(text)
		assert.NotEqual(t, "es", code)
		assert.NotEqual(t, "en", code)
		assert.NotEmpty(t, code, "非支持语言应返回检测出的代码而不是空串")
	})
}
