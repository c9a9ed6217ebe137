package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the host the client used for the request.
//
// The scheme defaults to http and is only switched to https if the
// x-forwarded-proto header says so. A reverse proxy is detected through the
// de-facto standard x-forwarded-host header; when one is present, the
// x-forwarded-prefix header is used as path prefix.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}
