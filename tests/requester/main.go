package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/sessions"

var cart = map[string]any{
	"items": []map[string]any{
		{"id": "A", "seller_id": "1", "quantity": 1, "logistics_index": 0},
		{"id": "B", "seller_id": "1", "quantity": 2, "logistics_index": 1},
	},
	"logistics_info": []map[string]any{
		{"item_index": 0, "item_id": "A", "slas": []map[string]any{
			{"id": "Retirada (P1)", "delivery_channel": "pickup-in-point", "pickup_point_id": "P1", "seller_id": "1"},
		}},
		{"item_index": 1, "item_id": "B", "slas": []map[string]any{
			{"id": "Retirada (P2)", "delivery_channel": "pickup-in-point", "pickup_point_id": "P2", "seller_id": "1"},
		}},
	},
	"pickup_points": []map[string]any{
		{"id": "P1", "name": "Store P1"},
		{"id": "P2", "name": "Store P2"},
	},
	"best_pickup_options": []map[string]any{
		{"id": "Retirada (P1)", "pickup_point_id": "P1", "name": "Store P1"},
		{"id": "Retirada (P2)", "pickup_point_id": "P2", "name": "Store P2"},
	},
	"search_address": map[string]any{"city": "Rio de Janeiro"},
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(runSession)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

type session struct {
	ID string `json:"id"`
}

func post(url string, body any) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	return http.Post(url, "application/json", &buf)
}

func runSession() {
	resp, err := post(baseURL, map[string]any{"cart": cart})
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	var s session
	err = json.NewDecoder(resp.Body).Decode(&s)
	resp.Body.Close()
	if err != nil {
		fmt.Println("Ошибка ответа:", err)
		return
	}
	fmt.Println("POST", baseURL, "->", resp.Status, s.ID)

	steps := []struct {
		path string
		body any
	}{
		{"/select", map[string]string{"option_id": "Retirada (P1)"}},
		{"/next", nil},
		{"/back", nil},
		{"/select", map[string]string{"option_id": "Retirada (P2)"}},
		{"/confirm", nil},
	}
	if rand.Intn(5) == 0 {
		steps = steps[:3]
	}

	for _, step := range steps {
		url := baseURL + "/" + s.ID + step.path
		resp, err := post(url, step.body)
		if err != nil {
			fmt.Println("Ошибка запроса:", err)
			return
		}
		fmt.Println("POST", url, "->", resp.Status)
		resp.Body.Close()
	}
}
