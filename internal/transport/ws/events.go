// Package ws 实时事件推送：订阅进程内总线，把 listing/order 事件
// 以 JSON 帧转发给已连接的客户端。
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"go-graphql-marketplace/internal/core/bus"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 浏览器端演示客户端跨域连，放开 Origin 校验
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHandler 每个连接各订阅一份总线，断开即退订
func EventsHandler(b *bus.Bus, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			l.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		events, cancel := b.Subscribe()

		// 读泵只为感知关闭；客户端不需要发东西
		go func() {
			defer cancel()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		go func() {
			defer conn.Close()
			for ev := range events {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					cancel()
					return
				}
			}
		}()
	}
}
