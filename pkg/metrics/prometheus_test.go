package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware_RecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewManager("abq")

	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/venture/:slug", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venture not found"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/venture/solar", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/venture/:slug", "404")))
}

func TestManager_Counters(t *testing.T) {
	m := NewManager("abq")

	m.AddImageShifts(3)
	m.AddImageShifts(0)
	m.AddCoverCleared(1)
	m.ContactResult("sent")
	m.CacheResult("venture_detail", true)
	m.MissingCover()

	assert.Equal(t, float64(3), testutil.ToFloat64(m.ImageShifts))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CoverReassigned))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ContactMessages.WithLabelValues("sent")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("venture_detail", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MissingCoverSeen))
}

func TestManager_NilSafe(t *testing.T) {
	var m *Manager
	assert.NotPanics(t, func() {
		m.AddImageShifts(2)
		m.AddCoverCleared(1)
		m.ContactResult("failed")
		m.CacheResult("blog_list", false)
		m.MissingCover()
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := NewManager("abq")
	m.ContactResult("sent")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "abq_contact_messages_total"))
}
