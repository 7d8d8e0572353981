package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// WriteRateLimit 更新系エンドポイントの流量制限ミドルウェア
// IP ごとに window あたり maxAttempts 回まで。超過すると 429 を返す
func WriteRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	type entry struct {
		timestamps []time.Time
	}
	var (
		mu    sync.RWMutex
		store = make(map[string]*entry)
	)
	// 古い記録を定期的に掃除する
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			cutoff := time.Now().Add(-window)
			for ip, e := range store {
				newTs := e.timestamps[:0]
				for _, t := range e.timestamps {
					if t.After(cutoff) {
						newTs = append(newTs, t)
					}
				}
				if len(newTs) == 0 {
					delete(store, ip)
				} else {
					e.timestamps = newTs
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()
		mu.Lock()
		e, ok := store[ip]
		if !ok {
			e = &entry{}
			store[ip] = e
		}
		// ウィンドウ外の記録を除く
		cutoff := now.Add(-window)
		newTs := e.timestamps[:0]
		for _, t := range e.timestamps {
			if t.After(cutoff) {
				newTs = append(newTs, t)
			}
		}
		e.timestamps = newTs
		if len(e.timestamps) >= maxAttempts {
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "リクエストが頻繁すぎます。しばらくしてからお試しください",
			})
			c.Abort()
			return
		}
		e.timestamps = append(e.timestamps, now)
		mu.Unlock()
		c.Next()
	}
}
