package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Генератор гоняет полный жизненный цикл заказа по пользователям из встроенной фикстуры:
// покупатель 1, магазин 1, курьер 3.
const (
	consumerID = 1
	storeID    = 1
	courierID  = 3
)

var (
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_steps_total",
		Help: "Шаги сценария по результату",
	}, []string{"step", "result"})

	stepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_step_duration_seconds",
		Help:    "Длительность шага сценария в секундах",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"step"})
)

type order struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type orderResponse struct {
	Message string `json:"message"`
	Order   order  `json:"order"`
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) do(ctx context.Context, step, method, path string, body any, out any) error {
	start := time.Now()
	err := c.send(ctx, method, path, body, out)
	stepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	stepsTotal.WithLabelValues(step, result).Inc()
	return err
}

func (c *client) send(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// scenario создаёт заказ и доводит его до доставки. Раз в несколько итераций заказ
// отклоняется магазином, чтобы в метриках была и отмена.
func scenario(ctx context.Context, c *client, iteration int) error {
	if err := c.do(ctx, "list_stores", http.MethodGet, "/stores", nil, nil); err != nil {
		return err
	}
	if err := c.do(ctx, "list_products", http.MethodGet, "/stores/"+strconv.Itoa(storeID)+"/products", nil, nil); err != nil {
		return err
	}

	var created orderResponse
	err := c.do(ctx, "create_order", http.MethodPost, "/orders", map[string]any{
		"userId":          consumerID,
		"storeId":         storeID,
		"products":        []map[string]int{{"productId": 1, "quantity": 1 + rand.IntN(3)}},
		"deliveryAddress": "Calle Falsa 123",
		"paymentMethod":   "cash",
	}, &created)
	if err != nil {
		return err
	}

	storeOrder := fmt.Sprintf("/stores/%d/orders/%d", storeID, created.Order.ID)
	if iteration%5 == 0 {
		return c.do(ctx, "store_reject", http.MethodPut, storeOrder+"/reject", nil, nil)
	}

	if err := c.do(ctx, "courier_accept", http.MethodPut,
		fmt.Sprintf("/delivery/orders/%d/accept", created.Order.ID),
		map[string]int{"deliveryPersonId": courierID}, nil); err != nil {
		return err
	}
	for _, action := range []string{"prepare", "ready"} {
		if err := c.do(ctx, "store_"+action, http.MethodPut, storeOrder+"/"+action, nil, nil); err != nil {
			return err
		}
	}

	courierOrder := fmt.Sprintf("/delivery/%d/orders/%d", courierID, created.Order.ID)
	for _, action := range []string{"pickup", "deliver"} {
		if err := c.do(ctx, "courier_"+action, http.MethodPut, courierOrder+"/"+action, nil, nil); err != nil {
			return err
		}
	}

	return c.do(ctx, "courier_earnings", http.MethodGet, fmt.Sprintf("/delivery/%d/earnings", courierID), nil, nil)
}

func main() {
	baseURL := flag.String("target", "http://localhost:8080", "marketplace base URL")
	interval := flag.Duration("interval", 2*time.Second, "pause between scenarios")
	metricsAddr := flag.String("metrics", ":2112", "metrics listen address")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsServer := &http.Server{
		Addr:              *metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()

	c := &client{
		baseURL: *baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for iteration := 1; ; iteration++ {
		if err := scenario(ctx, c, iteration); err != nil && ctx.Err() == nil {
			log.Printf("scenario %d: %v", iteration, err)
		}

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
			return
		case <-ticker.C:
		}
	}
}
