package handlers

import (
	"net/http"

	"estatehub/database/query"
	"estatehub/middleware"
	"estatehub/models"
	"estatehub/services/contact"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	Contacts contact.ContactService
}

// Submit handles the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if !bindJSON(c, &req) {
		return
	}
	meta := contact.RequestMeta{IPAddress: middleware.ClientIP(c), UserAgent: c.Request.UserAgent()}

	created, err := h.Contacts.Submit(c.Request.Context(), req, meta)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RequestLogger(c).Info("Contact inquiry received",
		zap.String("id", created.ID.Hex()),
		zap.String("priority", string(created.Priority)),
		zap.Strings("tags", created.Tags))
	utils.Respond(c, http.StatusCreated, created, "Thank you for your inquiry. We will get back to you soon.")
}

func (h *ContactHandler) List(c *gin.Context) {
	var (
		params query.ContactParams
		err    error
	)
	if params.Status, err = enumQuery(c, "status", models.ContactStatus.Valid); err != nil {
		utils.RespondError(c, err)
		return
	}
	if params.Priority, err = enumQuery(c, "priority", models.Priority.Valid); err != nil {
		utils.RespondError(c, err)
		return
	}
	if params.Property, err = objectIDQuery(c, "property"); err != nil {
		utils.RespondError(c, err)
		return
	}
	if params.AssignedTo, err = objectIDQuery(c, "assignedTo"); err != nil {
		utils.RespondError(c, err)
		return
	}
	if s := optionalQuery(c, "search"); s != nil {
		params.Search = *s
	}
	sort, err := query.ContactSort.Parse(c.Query("sort"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	w, err := windowQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	page, err := h.Contacts.List(c.Request.Context(), params, sort, w)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, page, "Contacts retrieved successfully")
}

func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.Contacts.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, stats, "Contact statistics retrieved successfully")
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}
	ct, err := h.Contacts.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, ct, "Contact retrieved successfully")
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}
	var req contact.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	ct, err := h.Contacts.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, ct, "Contact updated successfully")
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "contact")
	if !ok {
		return
	}
	if err := h.Contacts.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, nil, "Contact deleted successfully")
}
