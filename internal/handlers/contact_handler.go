package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dieselmedia/booking-api/internal/httperr"
	"github.com/dieselmedia/booking-api/internal/httpresp"
	"github.com/dieselmedia/booking-api/internal/middleware"
	ucContact "github.com/dieselmedia/booking-api/internal/usecase/contact"
)

type ContactHandler struct {
	createUC *ucContact.CreateMessage
	listUC   *ucContact.ListMessages
	getUC    *ucContact.GetMessage
	deleteUC *ucContact.DeleteMessage
}

func NewContactHandler(
	createUC *ucContact.CreateMessage,
	listUC *ucContact.ListMessages,
	getUC *ucContact.GetMessage,
	deleteUC *ucContact.DeleteMessage,
) *ContactHandler {
	return &ContactHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ucContact.CreateMessageInput
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, m)
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, messages)
}

func (h *ContactHandler) Get(c *gin.Context) {
	m, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, m)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), middleware.AdminEmail(c), c.Param("id")); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Message(c, "Message deleted successfully")
}
