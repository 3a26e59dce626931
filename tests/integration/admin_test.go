package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beyazservis/servis-go/models"
)

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	userToken := loginForTests(t, "tekin", "123456")

	doRequest(t, "GET", "/api/admin/users", userToken, nil, http.StatusForbidden)
	doRequest(t, "GET", "/api/admin/users", "", nil, http.StatusUnauthorized)
}

func TestAdminUserListCountsIslemler(t *testing.T) {
	registerUserForTests("sayimci", "123456")
	token := loginForTests(t, "sayimci", "123456")
	adminToken := adminLoginForTests(t, "patron", "123456")

	islem := createIslemForTests(t, token, "Sayim Musterisi")
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", islem.ID), token, nil, 0)

	w := doRequest(t, "GET", "/api/admin/users", adminToken, nil, http.StatusOK)
	var users []models.UserWithIslemCount
	dataOf(t, w, &users)

	found := false
	for _, u := range users {
		if u.Username == "sayimci" {
			found = true
			require.Equal(t, int64(1), u.IslemSayisi)
		}
	}
	require.True(t, found)
}

func TestAdminUserKayitlarDrillDown(t *testing.T) {
	registerUserForTests("dokumcu", "123456")
	token := loginForTests(t, "dokumcu", "123456")
	adminToken := adminLoginForTests(t, "patron", "123456")

	islem := createIslemForTests(t, token, "Dokum Musterisi")
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/islemler/%d", islem.ID), token, nil, 0)

	w := doRequest(t, "POST", "/api/atolye", token, map[string]any{
		"musteri_ad_soyad": "Dokum Musterisi",
		"marka":            "Beko",
		"sikayet":          "Calismiyor",
	}, http.StatusCreated)
	var atolye models.Atolye
	dataOf(t, w, &atolye)
	defer doRequest(t, "DELETE", fmt.Sprintf("/api/atolye/%d", atolye.ID), token, nil, 0)

	w = doRequest(t, "GET", "/api/admin/kayitlar/dokumcu", adminToken, nil, http.StatusOK)
	var dump struct {
		Islemler  []models.Islem  `json:"islemler"`
		Atolyeler []models.Atolye `json:"atolyeler"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dump))
	require.Len(t, dump.Islemler, 1)
	require.Len(t, dump.Atolyeler, 1)
}

func TestAdminDeleteUser(t *testing.T) {
	registerUserForTests("silinecek", "123456")
	adminToken := adminLoginForTests(t, "patron", "123456")

	w := doRequest(t, "GET", "/api/admin/users", adminToken, nil, http.StatusOK)
	var users []models.UserWithIslemCount
	dataOf(t, w, &users)

	var id uint
	for _, u := range users {
		if u.Username == "silinecek" {
			id = u.ID
		}
	}
	require.NotZero(t, id)

	doRequest(t, "DELETE", fmt.Sprintf("/api/admin/users/%d", id), adminToken, nil, http.StatusOK)
	doRequest(t, "DELETE", fmt.Sprintf("/api/admin/users/%d", id), adminToken, nil, http.StatusNotFound)
}
