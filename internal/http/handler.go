// Package http exposes the quotation wizard over REST. Field validation
// lives here, at the form boundary: the registry trusts what it receives.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travelpro/quotes-service/internal/model"
	"github.com/travelpro/quotes-service/internal/registry"
	"github.com/travelpro/quotes-service/internal/service"
)

type Handler struct {
	quotes *service.QuoteService
	log    zerolog.Logger
}

func NewHandler(quotes *service.QuoteService, log zerolog.Logger) *Handler {
	return &Handler{quotes: quotes, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/quotations", h.listQuotations)
	router.POST("/quotations", h.createQuotation)
	router.POST("/quotations/:id/duplicate", h.duplicateQuotation)
	router.POST("/quotations/:id/edit", h.editQuotation)
	router.DELETE("/quotations/:id", h.deleteQuotation)

	current := router.Group("/quotations/current")
	current.GET("", h.getCurrent)
	current.POST("/reset", h.resetCurrent)
	current.POST("/save", h.saveQuotation)
	current.PATCH("/details", h.updateDetails)
	current.GET("/totals", h.getTotals)
	current.PUT("/service-charge", h.setServiceCharge)
	current.GET("/export/pdf", h.exportPDF)
	current.GET("/export/excel", h.exportExcel)

	current.POST("/transport", h.addTransport)
	current.PATCH("/transport/:id", h.updateTransport)
	current.DELETE("/transport/:id", h.removeTransport)
	current.POST("/itinerary", h.addItineraryItem)
	current.PATCH("/itinerary/:id", h.updateItineraryItem)
	current.DELETE("/itinerary/:id", h.removeItineraryItem)
	current.POST("/costs", h.addAdditionalCost)
	current.PATCH("/costs/:id", h.updateAdditionalCost)
	current.DELETE("/costs/:id", h.removeAdditionalCost)

	router.PUT("/wizard/step", h.setStep)
	router.POST("/wizard/advance", h.advanceStep)
}

// ---- quotation collection --------------------------------------------------

func (h *Handler) listQuotations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quotations": h.quotes.Session().Quotations()})
}

type createQuotationRequest struct {
	CustomerName      string   `json:"customerName" binding:"required"`
	NumberOfTravelers int      `json:"numberOfTravelers" binding:"required,min=1"`
	StartDate         string   `json:"startDate" binding:"required"`
	EndDate           string   `json:"endDate" binding:"required"`
	TravelLocations   string   `json:"travelLocations" binding:"required"`
	Budget            *float64 `json:"budget" binding:"omitempty,gte=0"`
}

func (h *Handler) createQuotation(c *gin.Context) {
	var req createQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be after startDate"})
		return
	}

	q := h.quotes.Session().CreateNewQuotation(registry.NewQuotationInput{
		CustomerName:      req.CustomerName,
		NumberOfTravelers: req.NumberOfTravelers,
		StartDate:         start,
		EndDate:           end,
		TravelLocations:   req.TravelLocations,
		Budget:            req.Budget,
	})
	c.JSON(http.StatusCreated, gin.H{"quotation": q, "step": h.quotes.Session().Step()})
}

func (h *Handler) duplicateQuotation(c *gin.Context) {
	dup, err := h.quotes.DuplicateQuotation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"quotation": dup})
}

func (h *Handler) editQuotation(c *gin.Context) {
	if !h.quotes.Session().EditQuotation(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "quotation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quotation": h.quotes.Session().CurrentQuotation(),
		"step":      h.quotes.Session().Step(),
	})
}

func (h *Handler) deleteQuotation(c *gin.Context) {
	if err := h.quotes.DeleteQuotation(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- current quotation -----------------------------------------------------

func (h *Handler) getCurrent(c *gin.Context) {
	current := h.quotes.Session().CurrentQuotation()
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no quotation is being edited"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": current, "step": h.quotes.Session().Step()})
}

func (h *Handler) resetCurrent(c *gin.Context) {
	h.quotes.Session().ResetCurrentQuotation()
	c.Status(http.StatusNoContent)
}

func (h *Handler) saveQuotation(c *gin.Context) {
	saved, err := h.quotes.SaveQuotation(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	if saved == nil {
		// nothing being edited: the quiet-tolerance path
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotation": saved})
}

type detailsPatchRequest struct {
	CustomerName      *string  `json:"customerName" binding:"omitempty,min=1"`
	NumberOfTravelers *int     `json:"numberOfTravelers" binding:"omitempty,min=1"`
	StartDate         *string  `json:"startDate"`
	EndDate           *string  `json:"endDate"`
	TravelLocations   *string  `json:"travelLocations" binding:"omitempty,min=1"`
	Budget            *float64 `json:"budget" binding:"omitempty,gte=0"`
	Status            *string  `json:"status" binding:"omitempty,oneof=draft sent accepted declined"`
}

func (h *Handler) updateDetails(c *gin.Context) {
	var req detailsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := model.DetailsPatch{
		CustomerName:      req.CustomerName,
		NumberOfTravelers: req.NumberOfTravelers,
		TravelLocations:   req.TravelLocations,
		Budget:            req.Budget,
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		patch.EndDate = &end
	}
	if patch.StartDate != nil || patch.EndDate != nil {
		// a patch may carry one date; validate the pair as it would be merged
		if current := h.quotes.Session().CurrentQuotation(); current != nil {
			start, end := current.Details.StartDate, current.Details.EndDate
			if patch.StartDate != nil {
				start = *patch.StartDate
			}
			if patch.EndDate != nil {
				end = *patch.EndDate
			}
			if !end.After(start) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be after startDate"})
				return
			}
		}
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		patch.Status = &status
	}

	h.quotes.Session().UpdateQuotationDetails(patch)
	c.Status(http.StatusNoContent)
}

func (h *Handler) getTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.quotes.Totals())
}

type serviceChargeRequest struct {
	Type  string   `json:"type" binding:"required,oneof=fixed percentage"`
	Value *float64 `json:"value" binding:"required,gte=0"`
}

func (h *Handler) setServiceCharge(c *gin.Context) {
	var req serviceChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.quotes.Session().SetServiceCharge(model.ServiceCharge{
		Type:  model.ChargeType(req.Type),
		Value: *req.Value,
	})
	c.Status(http.StatusNoContent)
}

// ---- transport legs --------------------------------------------------------

type transportRequest struct {
	From            string   `json:"from" binding:"required"`
	To              string   `json:"to" binding:"required"`
	Mode            string   `json:"mode" binding:"required,oneof=plane train bus"`
	CostPerTraveler *float64 `json:"costPerTraveler" binding:"required,gte=0"`
	Date            *string  `json:"date"`
	Notes           string   `json:"notes"`
}

func (h *Handler) addTransport(c *gin.Context) {
	var req transportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leg := model.Transport{
		From:            req.From,
		To:              req.To,
		Mode:            model.TransportMode(req.Mode),
		CostPerTraveler: *req.CostPerTraveler,
		Notes:           req.Notes,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		leg.Date = &date
	}

	added, ok := h.quotes.Session().AddTransport(leg)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transport": added})
}

type transportPatchRequest struct {
	From            *string  `json:"from" binding:"omitempty,min=1"`
	To              *string  `json:"to" binding:"omitempty,min=1"`
	Mode            *string  `json:"mode" binding:"omitempty,oneof=plane train bus"`
	CostPerTraveler *float64 `json:"costPerTraveler" binding:"omitempty,gte=0"`
	Date            *string  `json:"date"`
	Notes           *string  `json:"notes"`
}

func (h *Handler) updateTransport(c *gin.Context) {
	var req transportPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := model.TransportPatch{
		From:            req.From,
		To:              req.To,
		CostPerTraveler: req.CostPerTraveler,
		Notes:           req.Notes,
	}
	if req.Mode != nil {
		mode := model.TransportMode(*req.Mode)
		patch.Mode = &mode
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		patch.Date = &date
	}

	if !h.quotes.Session().UpdateTransport(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transport option not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) removeTransport(c *gin.Context) {
	if !h.quotes.Session().RemoveTransport(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "transport option not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- itinerary items -------------------------------------------------------

type itineraryItemRequest struct {
	Date        string   `json:"date" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Activities  string   `json:"activities"`
	HotelName   string   `json:"hotelName"`
	HotelCost   *float64 `json:"hotelCost" binding:"omitempty,gte=0"`
	LocalTravel string   `json:"localTravel"`
	Notes       string   `json:"notes"`
}

func (h *Handler) addItineraryItem(c *gin.Context) {
	var req itineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	added, ok := h.quotes.Session().AddItineraryItem(model.ItineraryItem{
		Date:        date,
		Location:    req.Location,
		Activities:  req.Activities,
		HotelName:   req.HotelName,
		HotelCost:   req.HotelCost,
		LocalTravel: req.LocalTravel,
		Notes:       req.Notes,
	})
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"itineraryItem": added})
}

type itineraryItemPatchRequest struct {
	Date        *string  `json:"date"`
	Location    *string  `json:"location" binding:"omitempty,min=1"`
	Activities  *string  `json:"activities"`
	HotelName   *string  `json:"hotelName"`
	HotelCost   *float64 `json:"hotelCost" binding:"omitempty,gte=0"`
	LocalTravel *string  `json:"localTravel"`
	Notes       *string  `json:"notes"`
}

func (h *Handler) updateItineraryItem(c *gin.Context) {
	var req itineraryItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := model.ItineraryItemPatch{
		Location:    req.Location,
		Activities:  req.Activities,
		HotelName:   req.HotelName,
		HotelCost:   req.HotelCost,
		LocalTravel: req.LocalTravel,
		Notes:       req.Notes,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		patch.Date = &date
	}

	if !h.quotes.Session().UpdateItineraryItem(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "itinerary item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) removeItineraryItem(c *gin.Context) {
	if !h.quotes.Session().RemoveItineraryItem(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "itinerary item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- additional costs ------------------------------------------------------

type additionalCostRequest struct {
	Description string   `json:"description" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
}

func (h *Handler) addAdditionalCost(c *gin.Context) {
	var req additionalCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, ok := h.quotes.Session().AddAdditionalCost(model.AdditionalCost{
		Description: req.Description,
		Amount:      *req.Amount,
	})
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"additionalCost": added})
}

type additionalCostPatchRequest struct {
	Description *string  `json:"description" binding:"omitempty,min=1"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
}

func (h *Handler) updateAdditionalCost(c *gin.Context) {
	var req additionalCostPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.quotes.Session().UpdateAdditionalCost(c.Param("id"), model.AdditionalCostPatch{
		Description: req.Description,
		Amount:      req.Amount,
	}) {
		c.JSON(http.StatusNotFound, gin.H{"error": "additional cost not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) removeAdditionalCost(c *gin.Context) {
	if !h.quotes.Session().RemoveAdditionalCost(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "additional cost not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ---- wizard ----------------------------------------------------------------

type setStepRequest struct {
	Step string `json:"step" binding:"required,oneof=details transport itinerary costs summary preview"`
}

func (h *Handler) setStep(c *gin.Context) {
	var req setStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.quotes.Session().SetStep(model.Step(req.Step))
	c.Status(http.StatusNoContent)
}

func (h *Handler) advanceStep(c *gin.Context) {
	if err := h.quotes.Session().Advance(); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.quotes.Session().Step()})
}

// ---- exports ---------------------------------------------------------------

func (h *Handler) exportPDF(c *gin.Context) {
	result, err := h.quotes.ExportPDF()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) exportExcel(c *gin.Context) {
	result, err := h.quotes.ExportExcel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

// ---- shared ----------------------------------------------------------------

func (h *Handler) handleError(c *gin.Context, err error) {
	var guard *registry.StepGuardError
	switch {
	case errors.Is(err, service.ErrNoCurrentQuotation):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &guard):
		c.JSON(http.StatusConflict, gin.H{"error": guard.Reason, "step": guard.Step})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}
