package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

const apiContentSecurityPolicy = "default-src 'self'; frame-ancestors 'self'; object-src 'none'"

// SecurityHeaders sets the usual hardening headers on every response.
// The swagger UI loads inline scripts, so the content security policy is
// only applied to API routes.
func SecurityHeaders() gin.HandlerFunc {
	return secure.New(secure.Config{
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		ReferrerPolicy:          "no-referrer",
		IENoOpen:                true,
	})
}

// ContentSecurityPolicy restricts API responses to same-origin resources
func ContentSecurityPolicy() gin.HandlerFunc {
	return secure.New(secure.Config{
		ContentSecurityPolicy: apiContentSecurityPolicy,
	})
}
