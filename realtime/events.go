package realtime

// Event names consumed by the dashboard; the UI keys distinct toasts off
// islem-durum-degisti, so it is separate from the generic update event.
const (
	EventYeniIslem         = "yeni-islem"
	EventIslemGuncellendi  = "islem-guncellendi"
	EventIslemSilindi      = "islem-silindi"
	EventIslemDurumDegisti = "islem-durum-degisti"
	EventYeniAtolye        = "yeni-atolye"
	EventAtolyeGuncellendi = "atolye-guncellendi"
	EventAtolyeSilindi     = "atolye-silindi"
)
