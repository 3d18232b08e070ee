package pos

import "github.com/lumapos/internal/provider"

// Handler 收银台接口处理器入口
// 说明：该处理器仅承载门店收银终端使用的 API。
type Handler struct {
	*provider.Container
}

// New 创建收银台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
