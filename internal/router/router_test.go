package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	blobmem "paws-sync/internal/adapters/blobstore/memory"
	"paws-sync/internal/ports/breeds"
	"paws-sync/internal/router"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/swaggo/swag"
)

type fakeCatalog struct {
	list []breeds.Breed
	err  error
}

func (f fakeCatalog) ListBreeds(context.Context) ([]breeds.Breed, error) { return f.list, f.err }

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_DogLifecycle(t *testing.T) {
	ts := newServer(t, router.Options{})
	const user = "u1"

	// 1) Alta del perro
	dogID := createDog(t, ts.URL, user, map[string]any{
		"name":      "Rex",
		"gender":    "male",
		"weight":    12.5,
		"breedName": "Beagle",
	})

	// 2) Peso y nota
	{
		st, body := doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/weights", user, map[string]any{"weight": 13.1})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adding weight, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "POST", "/dogs/"+dogID+"/notes", user, map[string]any{"title": "vet", "content": "all good"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adding note, got %d body=%s", st, string(body))
		}
	}

	// 3) Paseo de la mañana
	{
		st, body := doReq(t, ts.URL, "PUT", "/dogs/"+dogID+"/walks/2025-03-14/morning", user, map[string]any{"isCompleted": true})
		if st != http.StatusOK {
			t.Fatalf("expected 200 saving walk, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/walks/2025-03-14", user, nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"morningCompleted":true`) {
			t.Fatalf("unexpected walk day %d body=%s", st, string(body))
		}
	}

	// 4) Otro usuario no ve el perro
	{
		st, _ := doReq(t, ts.URL, "GET", "/dogs/"+dogID, "u2", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for other user, got %d", st)
		}
	}

	// 5) Borrado en cascada
	{
		st, body := doReq(t, ts.URL, "DELETE", "/dogs/"+dogID, user, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting dog, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/weights", user, nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected no weights after delete, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/dogs/"+dogID, user, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Reminders_UpcomingAndDogName(t *testing.T) {
	ts := newServer(t, router.Options{})
	const user = "u1"

	dogID := createDog(t, ts.URL, user, map[string]any{"name": "Luna", "gender": "female"})

	now := time.Now()
	for i, offset := range []time.Duration{-time.Hour, 3 * time.Hour, time.Hour, 2 * time.Hour} {
		st, body := doReq(t, ts.URL, "POST", "/reminders", user, map[string]any{
			"title":        "r" + string(rune('a'+i)),
			"reminderType": "GROOMING",
			"dateTime":     now.Add(offset).UnixMilli(),
			"dogId":        dogID,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating reminder, got %d body=%s", st, string(body))
		}
		var r struct {
			DogName string `json:"dogName"`
		}
		_ = json.Unmarshal(body, &r)
		if r.DogName != "Luna" {
			t.Fatalf("expected dogName Luna, got %q", r.DogName)
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/reminders/upcoming?limit=2", user, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 upcoming, got %d body=%s", st, string(body))
	}
	var list []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode upcoming: %v", err)
	}
	if len(list) != 2 || list[0].Title != "rc" || list[1].Title != "rd" {
		t.Fatalf("unexpected upcoming %+v", list)
	}

	st, _ = doReq(t, ts.URL, "GET", "/reminders/upcoming?limit=-1", user, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative limit, got %d", st)
	}
}

func TestHTTP_RequiresUser(t *testing.T) {
	ts := newServer(t, router.Options{})

	for _, p := range []string{"/dogs", "/reminders", "/reminders/upcoming"} {
		st, _ := doReq(t, ts.URL, "GET", p, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", p, st)
		}
	}
	st, _ := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_ProfileImageServedFromBlobs(t *testing.T) {
	ts := httptest.NewUnstartedServer(nil)
	ts.Config.Handler = router.NewRouter(router.Options{
		Blobs: blobmem.NewStore("http://" + ts.Listener.Addr().String() + "/blobs"),
	})
	ts.Start()
	t.Cleanup(ts.Close)

	req, _ := http.NewRequest("PUT", ts.URL+"/me/profile/image", bytes.NewReader([]byte("jpeg-bytes")))
	req.Header.Set("X-Debug-User-ID", "u1")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	var out struct {
		URL string `json:"url"`
	}
	_ = json.NewDecoder(res.Body).Decode(&out)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || !strings.Contains(out.URL, "/blobs/users/u1/profile/") {
		t.Fatalf("unexpected upload response %d %q", res.StatusCode, out.URL)
	}

	res, err = http.Get(out.URL)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if res.StatusCode != http.StatusOK || string(body) != "jpeg-bytes" {
		t.Fatalf("unexpected download %d %q", res.StatusCode, string(body))
	}

	st, _ := doReq(t, ts.URL, "GET", "/blobs/users/u1/profile/missing.jpg", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for missing blob, got %d", st)
	}
}

func TestHTTP_Breeds(t *testing.T) {
	ts := newServer(t, router.Options{Catalog: fakeCatalog{list: []breeds.Breed{{ID: 1, Name: "Akita"}}}})
	st, body := doReq(t, ts.URL, "GET", "/breeds", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "Akita") {
		t.Fatalf("unexpected breeds %d body=%s", st, string(body))
	}

	failing := newServer(t, router.Options{Catalog: fakeCatalog{err: errors.New("down")}})
	st, _ = doReq(t, failing.URL, "GET", "/breeds", "", nil)
	if st != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", st)
	}

	none := newServer(t, router.Options{})
	st, _ = doReq(t, none.URL, "GET", "/breeds", "", nil)
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", st)
	}
}

func TestHTTP_SessionSocketPushesState(t *testing.T) {
	ts := newServer(t, router.Options{})
	const user = "u1"

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/session/ws?debug_user_id=" + user
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	dogID := createDog(t, ts.URL, user, map[string]any{"name": "Rex", "gender": "male"})

	// esperar un estado ready que ya contenga al perro
	waitState(t, conn, func(s sessionState) bool {
		return s.Status == "ready" && len(s.Dogs) == 1 && s.Dogs[0].ID == dogID
	})

	// seleccionar por comando
	if err := conn.WriteJSON(map[string]any{"type": "select", "data": map[string]string{"dogId": dogID}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitState(t, conn, func(s sessionState) bool {
		return s.Selected != nil && s.Selected.ID == dogID
	})
}

func TestHTTP_ChildWritesOnMissingDog(t *testing.T) {
	ts := newServer(t, router.Options{})
	const user = "u1"

	st, _ := doReq(t, ts.URL, "POST", "/dogs/ghost/notes", user, map[string]any{"title": "vet"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 adding note to missing dog, got %d", st)
	}

	dogID := createDog(t, ts.URL, user, map[string]any{"name": "Rex", "gender": "male"})
	st, body := doReq(t, ts.URL, "PUT", "/dogs/"+dogID+"/notes/ghost", user, map[string]any{"title": "vet"})
	if st != http.StatusNotFound || !strings.Contains(string(body), "entry not found") {
		t.Fatalf("expected 404 updating missing note, got %d body=%s", st, string(body))
	}
	st, _ = doReq(t, ts.URL, "GET", "/dogs/"+dogID+"/notes", user, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing notes, got %d", st)
	}
}

// Cada ruta registrada tiene que figurar en el documento de /swagger.
func TestSwaggerDocCoversRoutes(t *testing.T) {
	routes, ok := router.NewRouter(router.Options{}).(chi.Routes)
	if !ok {
		t.Fatalf("router does not expose chi.Routes")
	}

	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("read doc: %v", err)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}

	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if strings.HasPrefix(route, "/swagger/") {
			return nil
		}
		p := strings.Replace(route, "/*", "/{path}", 1)
		if len(p) > 1 {
			p = strings.TrimSuffix(p, "/")
		}
		if _, ok := doc.Paths[p][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s missing from swagger doc", method, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

type sessionState struct {
	Status string `json:"status"`
	Dogs   []struct {
		ID string `json:"id"`
	} `json:"dogs"`
	Selected *struct {
		ID string `json:"id"`
	} `json:"selected"`
}

func waitState(t *testing.T, conn *websocket.Conn, ok func(sessionState) bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		_ = conn.SetReadDeadline(deadline)
		var msg struct {
			Type string       `json:"type"`
			Data sessionState `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for state: %v", err)
		}
		if msg.Type == "state" && ok(msg.Data) {
			return
		}
	}
}

func createDog(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/dogs", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating dog, got %d body=%s", st, string(body))
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.ID == "" {
		t.Fatalf("create dog response: %v body=%s", err, string(body))
	}
	return out.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
