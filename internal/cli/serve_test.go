package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/img2swipes/img2swipes/pkg/geom"
	"github.com/img2swipes/img2swipes/pkg/plan"
)

func TestArtifactsRouter(t *testing.T) {
	dir := t.TempDir()
	p := plan.New("x.png",
		geom.Rect{Max: geom.Point{X: 99, Y: 99}},
		10,
		[]geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}})
	if err := p.Write(dir + "/" + p.ID + ".json"); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(artifactsRouter(dir))
	defer srv.Close()

	t.Run("list plans", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/plans")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		var body struct {
			Plans []string `json:"plans"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if len(body.Plans) != 1 || body.Plans[0] != p.ID {
			t.Errorf("plans = %v, want [%s]", body.Plans, p.ID)
		}
	})

	t.Run("get plan", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/plans/" + p.ID)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var got plan.Plan
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		if got.ID != p.ID || len(got.Strokes) != 1 {
			t.Errorf("served plan %+v does not match written plan", got)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/plans/no-such-id")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("raw artifact", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/artifacts/" + p.ID + ".json")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}

func TestListPlanIDsMissingDir(t *testing.T) {
	ids, err := listPlanIDs(t.TempDir() + "/absent")
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
}
