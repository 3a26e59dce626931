package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/repositories/mock_repositories"
)

func setupLokasyonServiceMocks(t *testing.T) (*LokasyonService, *mock_repositories.MockLokasyonRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockLokasyon := mock_repositories.NewMockLokasyonRepo(ctrl)
	repos := &repositories.Repos{Lokasyon: mockLokasyon}
	return NewLokasyonService(repos), mockLokasyon
}

func lokasyonStubServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/districts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":101,"name":"Kadikoy"},{"id":102,"name":"Maltepe"}]}`)
	})
	mux.HandleFunc("/districts/101/neighborhoods", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":[{"id":9001,"name":"Moda"},{"id":9002,"name":"Fenerbahce"}]}`)
	})
	mux.HandleFunc("/districts/102/neighborhoods", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream hiccup", http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSeedIfEmpty_SkipsWhenAlreadySeeded(t *testing.T) {
	svc, mockLokasyon := setupLokasyonServiceMocks(t)

	mockLokasyon.EXPECT().CountIlceler().Return(int64(39), nil)

	assert.NoError(t, svc.SeedIfEmpty("http://unused.invalid"))
}

func TestSeedIfEmpty_LoadsDistrictsAndNeighborhoods(t *testing.T) {
	svc, mockLokasyon := setupLokasyonServiceMocks(t)
	srv := lokasyonStubServer(t)

	mockLokasyon.EXPECT().CountIlceler().Return(int64(0), nil)
	mockLokasyon.EXPECT().CreateIlce(gomock.Any()).DoAndReturn(func(i *models.Ilce) error {
		i.ID = uint(i.ExternalID)
		return nil
	}).Times(2)

	// only Kadikoy's neighborhoods arrive; Maltepe's upstream failure is
	// logged and skipped
	mockLokasyon.EXPECT().CreateMahalleler(gomock.Any()).DoAndReturn(func(m []models.Mahalle) error {
		assert.Len(t, m, 2)
		assert.Equal(t, uint(101), m[0].IlceID)
		assert.Equal(t, "Moda", m[0].Ad)
		return nil
	})

	assert.NoError(t, svc.SeedIfEmpty(srv.URL))
}

func TestSeedIfEmpty_DistrictListFailureIsFatal(t *testing.T) {
	svc, mockLokasyon := setupLokasyonServiceMocks(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	mockLokasyon.EXPECT().CountIlceler().Return(int64(0), nil)

	assert.Error(t, svc.SeedIfEmpty(srv.URL))
}
