package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processPathReq binds and validates a {path} request body.
func (h *handler) processPathReq(c *gin.Context) (pathReq, error) {
	var req pathReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processContentReq binds the GET /content query.
func (h *handler) processContentReq(c *gin.Context) (contentReq, error) {
	var req contentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processEditReq binds and validates the range replacement body.
func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	var req editReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSetContentReq binds and validates the whole-buffer replacement body.
func (h *handler) processSetContentReq(c *gin.Context) (setContentReq, error) {
	var req setContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSweepReq accepts dry_run from the query or an optional JSON body.
func (h *handler) processSweepReq(c *gin.Context) (sweepReq, error) {
	var req sweepReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
