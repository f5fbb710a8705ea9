package main

import (
	"voiceagent-bridge/internal/httpapi"
	"voiceagent-bridge/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Keep this file free of business logic. Handlers delegate to internal modules.

func registerPublicRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

func registerProtectedRoutes(r *gin.Engine, authMW gin.HandlerFunc, h httpapi.Handlers, batchCap gin.HandlerFunc) {
	v1 := r.Group("/v1")
	v1.Use(authMW)

	// NORMALIZE routes: integrations push raw payloads.
	ingest := v1.Group("/normalize")
	ingest.Use(httpapi.RequireWorkspaceAndPermission(rbac.PermIngest)...)
	ingest.Use(batchCap)
	{
		ingest.POST("/agents", h.NormalizeAgents)
		ingest.POST("/campaigns", h.NormalizeCampaigns)
		ingest.POST("/call-logs", h.NormalizeCallLogs)
		ingest.POST("/phone-numbers", h.NormalizePhoneNumbers)
	}

	// READ routes: normalized views over the upstream API.
	read := v1.Group("")
	read.Use(httpapi.RequireWorkspaceAndPermission(rbac.PermRead)...)
	{
		read.GET("/agents/:agent_id", h.GetAgent)
		read.GET("/campaigns", h.ListCampaigns)
		read.GET("/call-logs", h.ListCallLogs)
		read.GET("/call-logs/summary", h.CallLogsSummary)
		read.GET("/phone-numbers", h.ListPhoneNumbers)
	}
}
