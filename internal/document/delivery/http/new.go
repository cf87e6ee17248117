package http

import (
	"github.com/gin-gonic/gin"

	"delete-on-check/internal/document"
	"delete-on-check/pkg/log"
)

// Handler is the public interface for the document HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Content(c *gin.Context)
	Open(c *gin.Context)
	Activate(c *gin.Context)
	Close(c *gin.Context)
	Edit(c *gin.Context)
	SetContent(c *gin.Context)
	Save(c *gin.Context)
	Sweep(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc document.UseCase
}

// New creates a new HTTP handler for the document domain.
func New(l log.Logger, uc document.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
