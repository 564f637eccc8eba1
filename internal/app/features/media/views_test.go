package media_test

import (
	"testing"

	"github.com/dalemusser/gardenadmin/internal/app/features/media"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/gardenadmin/internal/testutil"
)

func TestBuildList(t *testing.T) {
	p := panel.Panel[models.MediaItem]{Items: testutil.SampleMedia()}

	v := media.BuildList(p, "all", "http://garden.test/")
	if len(v.Cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(v.Cards))
	}
	img := v.Cards[0]
	if img.URL != "http://garden.test/uploads/a.jpg" {
		t.Errorf("URL = %q", img.URL)
	}
	if img.Size != "2.00 KB" {
		t.Errorf("Size = %q", img.Size)
	}
	if img.Video || img.Icon != "📷" {
		t.Errorf("image card = %+v", img)
	}
	if vid := v.Cards[1]; !vid.Video || vid.Size != "1.50 KB" {
		t.Errorf("video card = %+v", vid)
	}
}

func TestBuildList_TypeFilter(t *testing.T) {
	p := panel.Panel[models.MediaItem]{Items: testutil.SampleMedia()}

	v := media.BuildList(p, models.MediaTypeVideo, "")
	if len(v.Cards) != 1 || v.Cards[0].Filename != "b.mp4" {
		t.Errorf("cards = %+v", v.Cards)
	}
	for _, o := range v.Types {
		if o.Selected != (o.Value == models.MediaTypeVideo) {
			t.Errorf("option %q selected = %v", o.Value, o.Selected)
		}
	}

	v = media.BuildList(panel.Panel[models.MediaItem]{Items: []models.MediaItem{}}, "", "")
	if v.Placeholder == nil || v.Placeholder.Message != media.EmptyMessage {
		t.Errorf("placeholder = %+v", v.Placeholder)
	}
}

func TestCleanupMessage(t *testing.T) {
	got := media.CleanupMessage(&models.CleanupResult{FilesDeleted: 3, SpaceFreed: 3 * 1024 * 1024 / 2})
	if want := "Cleaned up 3 files, freed 1.50 MB"; got != want {
		t.Errorf("CleanupMessage = %q, want %q", got, want)
	}
}
