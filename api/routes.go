package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kofiantwi/airroutes/internal/domain"
	"github.com/kofiantwi/airroutes/internal/service/routes"
)

type RouteHandler struct {
	service routes.RouteUseCase
}

type searchRequest struct {
	FromCity    string `form:"from_city" binding:"required"`
	FromCountry string `form:"from_country" binding:"required"`
	ToCity      string `form:"to_city" binding:"required"`
	ToCountry   string `form:"to_country" binding:"required"`
	All         bool   `form:"all"`
}

type segmentResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Airline string `json:"airline"`
	Stops   int    `json:"stops"`
}

type routeResponse struct {
	Path       []string          `json:"path"`
	Segments   []segmentResponse `json:"segments"`
	Flights    int               `json:"flights"`
	ExtraStops int               `json:"extra_stops"`
}

type planResponse struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Optimal    routeResponse   `json:"optimal"`
	DistanceKM float64         `json:"distance_km"`
	All        []routeResponse `json:"all,omitempty"`
}

func NewRouteHandler(service routes.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
}

func (h *RouteHandler) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.Search(c.Request.Context(), routes.SearchInput{
		FromCity:    req.FromCity,
		FromCountry: req.FromCountry,
		ToCity:      req.ToCity,
		ToCountry:   req.ToCountry,
		All:         req.All,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedLocation), errors.Is(err, domain.ErrNoRoute):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNoOptimalRoute), errors.Is(err, domain.ErrNoAirlineLabel):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, toPlanResponse(plan))
}

func toPlanResponse(plan *domain.RoutePlan) planResponse {
	resp := planResponse{
		From:       string(plan.From),
		To:         string(plan.To),
		Optimal:    toRouteResponse(plan.Optimal),
		DistanceKM: plan.DistanceKM,
	}
	for _, summary := range plan.All {
		resp.All = append(resp.All, toRouteResponse(summary))
	}
	return resp
}

func toRouteResponse(summary domain.RouteSummary) routeResponse {
	resp := routeResponse{
		Flights:    summary.Flights,
		ExtraStops: summary.ExtraStops,
	}
	for _, code := range summary.Path {
		resp.Path = append(resp.Path, string(code))
	}
	for _, segment := range summary.Segments {
		resp.Segments = append(resp.Segments, segmentResponse{
			From:    string(segment.From),
			To:      string(segment.To),
			Airline: segment.Airline,
			Stops:   segment.Stops,
		})
	}
	return resp
}
