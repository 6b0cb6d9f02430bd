package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/utils"
)

// AdminAuth verifies HMAC-SHA256 request signatures on admin routes. The
// signature covers timestamp + body, and the timestamp must be inside the
// replay window.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sig := c.GetHeader("X-Signature")
		ts := c.GetHeader("X-Timestamp")
		if sig == "" || ts == "" {
			c.JSON(401, utils.Error(constant.CodeUnauthorized))
			c.Abort()
			return
		}

		reqTime, err := utils.ParseTimestamp(ts)
		if err != nil || !utils.IsTimestampValid(reqTime, 5*time.Minute) {
			c.JSON(403, utils.Error(constant.CodeTimestampExpired))
			c.Abort()
			return
		}

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		mac := hmac.New(sha256.New, []byte(config.C.Security.HMACSecret))
		mac.Write([]byte(ts))
		mac.Write(body)
		if !hmac.Equal([]byte(hex.EncodeToString(mac.Sum(nil))), []byte(sig)) {
			c.JSON(401, utils.Error(constant.CodeSignatureError))
			c.Abort()
			return
		}
		c.Next()
	}
}
