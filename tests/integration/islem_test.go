package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/beyazservis/servis-go/models"
)

func createIslemForTests(t *testing.T, token string, adSoyad string) models.Islem {
	body := map[string]any{
		"ad_soyad": adSoyad,
		"ilce":     "Kadikoy",
		"mahalle":  "Moda",
		"sokak":    "Bahariye Cad.",
		"bina_no":  "12",
		"cep_tel":  "0555 123 45 67",
		"urun":     "Camasir Makinesi",
		"marka":    "Beko",
		"sikayet":  "Su almiyor",
	}
	w := doRequest(t, "POST", "/api/islemler", token, body, http.StatusCreated)

	var islem models.Islem
	dataOf(t, w, &islem)
	return islem
}

func TestIslemLifecycle(t *testing.T) {
	token := loginForTests(t, "tekin", "123456")

	islem := createIslemForTests(t, token, "Ali Veli")
	require.NotZero(t, islem.ID)
	require.Equal(t, models.IslemDurumuAcik, islem.IsDurumu)
	require.Equal(t, "05551234567", islem.CepTel)
	require.NotNil(t, islem.CreatedBy)
	require.Equal(t, "tekin", *islem.CreatedBy)

	// sparse update keeps everything not named and re-stamps updated_at
	w := doRequest(t, "PUT", fmt.Sprintf("/api/islemler/%d", islem.ID), token,
		map[string]any{"teknisyen": "Mehmet"}, http.StatusOK)
	var updated models.Islem
	dataOf(t, w, &updated)
	require.Equal(t, "Mehmet", updated.Teknisyen)
	require.Equal(t, "Ali Veli", updated.AdSoyad)
	require.Equal(t, "Su almiyor", updated.Sikayet)
	require.True(t, updated.UpdatedAt.After(islem.UpdatedAt))
	require.True(t, updated.UpdatedAt.After(updated.FullTarih))
	require.WithinDuration(t, islem.FullTarih, updated.FullTarih, time.Millisecond)

	// an updated_at in the body is not a writable field; the stamp still
	// comes from the server
	prev := updated.UpdatedAt
	w = doRequest(t, "PUT", fmt.Sprintf("/api/islemler/%d", islem.ID), token,
		map[string]any{"teknisyen": "Hasan", "updated_at": "2000-01-01T00:00:00Z"}, http.StatusOK)
	dataOf(t, w, &updated)
	require.Equal(t, "Hasan", updated.Teknisyen)
	require.True(t, updated.UpdatedAt.After(prev))

	// status patch
	prev = updated.UpdatedAt
	w = doRequest(t, "PATCH", fmt.Sprintf("/api/islemler/%d/durum", islem.ID), token,
		map[string]any{"is_durumu": "tamamlandi"}, http.StatusOK)
	dataOf(t, w, &updated)
	require.Equal(t, models.IslemDurumuTamamlandi, updated.IsDurumu)
	require.True(t, updated.UpdatedAt.After(prev))

	// print flag patch
	w = doRequest(t, "PATCH", fmt.Sprintf("/api/islemler/%d/yazdirildi", islem.ID), token,
		map[string]any{"yazdirildi": true}, http.StatusOK)
	dataOf(t, w, &updated)
	require.True(t, updated.Yazdirildi)

	doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", islem.ID), token, nil, http.StatusOK)
	doRequest(t, "GET", fmt.Sprintf("/api/islemler/%d", islem.ID), token, nil, http.StatusNotFound)
}

func TestIslemCreate_IgnoresClientStatus(t *testing.T) {
	token := loginForTests(t, "tekin", "123456")

	body := map[string]any{
		"ad_soyad":  "Zeynep Kaya",
		"ilce":      "Maltepe",
		"mahalle":   "Baglarbasi",
		"sokak":     "Inonu Cad.",
		"bina_no":   "3",
		"cep_tel":   "05551112233",
		"urun":      "Bulasik Makinesi",
		"marka":     "Bosch",
		"sikayet":   "Yikamiyor",
		"is_durumu": "tamamlandi",
	}
	w := doRequest(t, "POST", "/api/islemler", token, body, http.StatusCreated)

	var islem models.Islem
	dataOf(t, w, &islem)
	require.Equal(t, models.IslemDurumuAcik, islem.IsDurumu)

	doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", islem.ID), token, nil, http.StatusOK)
}

func TestIslemList_FilterCombinesWithAnd(t *testing.T) {
	token := loginForTests(t, "ayse", "123456")

	a := createIslemForTests(t, token, "Filtre Deneme Bir")
	b := createIslemForTests(t, token, "Filtre Deneme Iki")
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", a.ID), token, nil, 0)
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", b.ID), token, nil, 0)

	w := doRequest(t, "GET", "/api/islemler?ad_soyad=filtre+deneme&marka=beko", token, nil, http.StatusOK)
	var islemler []models.Islem
	dataOf(t, w, &islemler)
	require.GreaterOrEqual(t, len(islemler), 2)

	w = doRequest(t, "GET", "/api/islemler?ad_soyad=filtre+deneme&marka=vestel", token, nil, http.StatusOK)
	dataOf(t, w, &islemler)
	require.Empty(t, islemler)
}

func TestIslemDurum_RejectsUnknownValue(t *testing.T) {
	token := loginForTests(t, "tekin", "123456")

	islem := createIslemForTests(t, token, "Durum Deneme")
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", islem.ID), token, nil, 0)

	doRequest(t, "PATCH", fmt.Sprintf("/api/islemler/%d/durum", islem.ID), token,
		map[string]any{"is_durumu": "bilinmeyen"}, http.StatusBadRequest)
}

func TestIslemUpdate_LastWriteWins(t *testing.T) {
	tokenA := loginForTests(t, "tekin", "123456")
	tokenB := loginForTests(t, "ayse", "123456")

	islem := createIslemForTests(t, tokenA, "Yaris Musterisi")
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", islem.ID), tokenA, nil, 0)

	doRequest(t, "PUT", fmt.Sprintf("/api/islemler/%d", islem.ID), tokenA,
		map[string]any{"teknisyen": "Mehmet"}, http.StatusOK)
	w := doRequest(t, "PUT", fmt.Sprintf("/api/islemler/%d", islem.ID), tokenB,
		map[string]any{"teknisyen": "Hasan"}, http.StatusOK)

	var updated models.Islem
	dataOf(t, w, &updated)
	require.Equal(t, "Hasan", updated.Teknisyen)
}

func TestIslemEndpointsRequireToken(t *testing.T) {
	doRequest(t, "GET", "/api/islemler", "", nil, http.StatusUnauthorized)
	doRequest(t, "POST", "/api/islemler", "", map[string]any{"ad_soyad": "x"}, http.StatusUnauthorized)
}
