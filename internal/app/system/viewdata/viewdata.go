// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// NavItem is one entry of the sidebar.
type NavItem struct {
	ID     string
	Title  string
	Href   string
	Active bool
}

// Status is the refresh state shown in the header.
type Status struct {
	LastUpdate  time.Time
	AutoRefresh bool
	Interval    time.Duration
}

// StatusLoader reports the current refresh state.
// This is set by bootstrap to avoid circular dependencies.
type StatusLoader func() Status

var statusLoader StatusLoader

// SetStatusLoader sets the function used to fill the header status.
// Call this once at startup from bootstrap.
func SetStatusLoader(loader StatusLoader) {
	statusLoader = loader
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, models.SectionTasks),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	Section     string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// Header status. LastUpdateMs is echoed back by the status poll.
	LastUpdate   string
	LastUpdateMs int64
	AutoRefresh  bool
	RefreshSecs  int

	// CSRF protection
	CSRFToken string
}

// SiteName is the brand shown in the header and the page title.
const SiteName = "Garden Admin"

// NewBaseVM creates a fully populated BaseVM for a section page.
func NewBaseVM(r *http.Request, section string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Title:       models.SectionTitle(section),
		Section:     section,
		BackURL:     httpnav.ResolveBackURL(r, "/dashboard"),
		CurrentPath: httpnav.CurrentPath(r),
		Nav:         Nav(section),
		LastUpdate:  format.Clock(time.Time{}),
		CSRFToken:   csrf.Token(r),
	}
	if statusLoader != nil {
		st := statusLoader()
		vm.LastUpdate = format.Clock(st.LastUpdate)
		if !st.LastUpdate.IsZero() {
			vm.LastUpdateMs = st.LastUpdate.UnixMilli()
		}
		vm.AutoRefresh = st.AutoRefresh
		vm.RefreshSecs = int(st.Interval / time.Second)
	}
	return vm
}

// Nav builds the sidebar with active marking the current section.
func Nav(active string) []NavItem {
	items := make([]NavItem, 0, len(models.Sections))
	for _, id := range models.Sections {
		items = append(items, NavItem{
			ID:     id,
			Title:  models.SectionTitle(id),
			Href:   "/" + id,
			Active: id == active,
		})
	}
	return items
}
