package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/theyellowexpress/expressbot/internal/pricing"
)

// StatusNotifier is told about persisted status changes so customers can be
// messaged. Notification failures never fail the update.
type StatusNotifier interface {
	OrderStatusChanged(ctx context.Context, o *Order, notes string)
}

// RegisterRoutes mounts the order endpoints on the given router. notifier may
// be nil.
func RegisterRoutes(r chi.Router, store *Store, rates pricing.Rates, notifier StatusNotifier) {
	r.Get("/api/quote", quoteHandler(rates))
	r.Post("/api/orders", createHandler(store, rates))
	r.Get("/api/orders", listHandler(store))
	r.Get("/api/orders/{id}", getHandler(store))
	r.Patch("/api/orders/{id}/status", updateStatusHandler(store, notifier))
	r.Get("/api/track/{tracking}", trackHandler(store))
}

type quoteResponse struct {
	Quote     pricing.Quote `json:"quote"`
	Breakdown []string      `json:"breakdown"`
}

func quoteHandler(rates pricing.Rates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		weight, err := strconv.ParseFloat(q.Get("weight"), 64)
		if err != nil || weight <= 0 {
			writeError(w, http.StatusBadRequest, "weight must be a positive number of pounds")
			return
		}
		declared, _ := strconv.ParseFloat(q.Get("declared_value"), 64)
		insurance := q.Get("insurance") == "true"

		quote := rates.ForWeight(weight, declared, insurance)
		writeJSON(w, http.StatusOK, quoteResponse{
			Quote:     quote,
			Breakdown: quote.Breakdown(rates),
		})
	}
}

type createRequest struct {
	CustomerName       string  `json:"customer_name"`
	CustomerEmail      string  `json:"customer_email"`
	CustomerPhone      string  `json:"customer_phone"`
	DestinationAddress string  `json:"destination_address"`
	DestinationCity    string  `json:"destination_city"`
	PackageDescription string  `json:"package_description"`
	PackageWeight      float64 `json:"package_weight"`
	DeclaredValue      float64 `json:"declared_value"`
	IncludeInsurance   bool    `json:"include_insurance"`
}

func createHandler(store *Store, rates pricing.Rates) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.CustomerName == "" || req.CustomerPhone == "" || req.PackageWeight <= 0 {
			writeError(w, http.StatusBadRequest, "customer_name, customer_phone and package_weight are required")
			return
		}

		quote := rates.ForWeight(req.PackageWeight, req.DeclaredValue, req.IncludeInsurance)
		order := &Order{
			CustomerName:       req.CustomerName,
			CustomerEmail:      req.CustomerEmail,
			CustomerPhone:      req.CustomerPhone,
			DestinationAddress: req.DestinationAddress,
			DestinationCity:    req.DestinationCity,
			PackageDescription: req.PackageDescription,
			PackageWeight:      req.PackageWeight,
			DeclaredValue:      req.DeclaredValue,
			ShippingCost:       quote.Total,
		}
		if err := store.Create(r.Context(), order); err != nil {
			log.Printf("orders: create: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to create order")
			return
		}
		writeJSON(w, http.StatusCreated, order)
	}
}

func listHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		list, err := store.ListRecent(r.Context(), limit)
		if err != nil {
			log.Printf("orders: list: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to list orders")
			return
		}
		if list == nil {
			list = []Order{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func getHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := store.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			log.Printf("orders: get: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to get order")
			return
		}
		if order == nil {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeJSON(w, http.StatusOK, order)
	}
}

type updateStatusRequest struct {
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}

func updateStatusHandler(store *Store, notifier StatusNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if !req.Status.Valid() {
			writeError(w, http.StatusBadRequest, "unknown status: "+string(req.Status))
			return
		}

		order, err := store.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.Notes)
		if err != nil {
			log.Printf("orders: update status: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to update status")
			return
		}
		if order == nil {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}

		if notifier != nil {
			notifier.OrderStatusChanged(r.Context(), order, req.Notes)
		}
		writeJSON(w, http.StatusOK, order)
	}
}

type trackResponse struct {
	Order   *Order         `json:"order"`
	History []StatusChange `json:"history"`
}

func trackHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := store.GetByTracking(r.Context(), chi.URLParam(r, "tracking"))
		if err != nil {
			log.Printf("orders: track: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to look up tracking number")
			return
		}
		if order == nil {
			writeError(w, http.StatusNotFound, "no order with that tracking number")
			return
		}

		history, err := store.History(r.Context(), order.ID)
		if err != nil {
			log.Printf("orders: track history: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to load status history")
			return
		}
		writeJSON(w, http.StatusOK, trackResponse{Order: order, History: history})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("orders: encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
