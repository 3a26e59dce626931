package routes

import (
	"github.com/beyazservis/servis-go/handlers"
	"github.com/beyazservis/servis-go/middleware"
	"github.com/beyazservis/servis-go/realtime"
	"github.com/beyazservis/servis-go/repositories"
	"github.com/beyazservis/servis-go/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, hub *realtime.Hub) *services.Services {

	// init
	repos_instance := repositories.New()
	services_instance := services.New(repos_instance, hub)
	handlers_instance := handlers.New(services_instance)

	r.GET("/ws", handlers.WSHandler(hub))

	api := r.Group("/api")

	api.POST("/auth/register", handlers_instance.Auth.Register)
	api.POST("/auth/login", handlers_instance.Auth.Login)
	api.POST("/auth/bayi-login", handlers_instance.Auth.BayiLogin)
	api.POST("/admin/login", handlers_instance.Auth.AdminLogin)

	api.GET("/ilceler", handlers_instance.Lokasyon.ListIlceler)
	api.GET("/ilceler/:id/mahalleler", handlers_instance.Lokasyon.ListMahalleler)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		islemler := auth.Group("/islemler")
		{
			islemler.GET("", handlers_instance.Islem.List)
			islemler.GET("/:id", handlers_instance.Islem.GetByID)
			islemler.POST("", handlers_instance.Islem.Create)
			islemler.PUT("/:id", handlers_instance.Islem.Update)
			islemler.PATCH("/:id/durum", handlers_instance.Islem.UpdateDurum)
			islemler.PATCH("/:id/yazdirildi", handlers_instance.Islem.UpdateYazdirildi)
			islemler.DELETE("/:id", handlers_instance.Islem.Delete)
		}
		atolye := auth.Group("/atolye")
		{
			atolye.GET("", handlers_instance.Atolye.List)
			atolye.GET("/:id", handlers_instance.Atolye.GetByID)
			atolye.POST("", handlers_instance.Atolye.Create)
			atolye.PUT("/:id", handlers_instance.Atolye.Update)
			atolye.DELETE("/:id", handlers_instance.Atolye.Delete)
		}

		// brand/technician/montaj/aksesuar lists are cacheable for 5 minutes
		katalog := map[string]struct {
			path   string
			cached bool
		}{
			"teknisyenler": {"/teknisyenler", true},
			"markalar":     {"/markalar", true},
			"urunler":      {"/urunler", false},
			"montajlar":    {"/montajlar", true},
			"aksesuarlar":  {"/aksesuarlar", true},
		}
		for table, cfg := range katalog {
			grp := auth.Group(cfg.path)
			grp.GET("", handlers_instance.Katalog.List(table, cfg.cached))
			grp.POST("", handlers_instance.Katalog.Create(table))
			grp.DELETE("/:id", handlers_instance.Katalog.Delete(table))
		}

		bayiler := auth.Group("/bayiler")
		{
			bayiler.GET("", handlers_instance.Katalog.ListBayiler)
			bayiler.POST("", handlers_instance.Katalog.CreateBayi)
			bayiler.DELETE("/:id", handlers_instance.Katalog.DeleteBayi)
		}

		printer := auth.Group("/printer-settings")
		{
			printer.GET("/:marka", handlers_instance.Yazici.Get)
			printer.POST("/:marka", handlers_instance.Yazici.Save)
			printer.DELETE("/:marka", handlers_instance.Yazici.Delete)
		}

		admin := auth.Group("/admin")
		admin.Use(middleware.AuthorizeAdmin())
		{
			admin.GET("/users", handlers_instance.Admin.ListUsers)
			admin.PATCH("/users/:id/aktif", handlers_instance.Admin.ToggleActive)
			admin.DELETE("/users/:id", handlers_instance.Admin.DeleteUser)
			admin.GET("/kayitlar/:username", handlers_instance.Admin.UserKayitlar)
		}
	}

	return services_instance
}
