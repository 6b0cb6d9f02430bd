package middleware

import (
	"github.com/gin-gonic/gin"

	"cruise-booking-api/internal/config"
	"cruise-booking-api/internal/constant"
	"cruise-booking-api/internal/utils"
)

// IPNSourceCheck restricts the gateway's server-to-server notifications to
// the provider's published IP ranges. The callback payload itself is never
// trusted for status; this check only screens obvious junk traffic.
func IPNSourceCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.GetRealClientIP(c)
		if ip == "" || !utils.IPAllowed(ip, config.C.Gateway.IPAllowlist) {
			c.JSON(401, utils.Error(constant.CodeIPNotAllowed))
			c.Abort()
			return
		}
		c.Next()
	}
}
