package i18n

// Static tables, namespace -> key -> string. Every key must exist in every
// supported language; the completeness test enforces it.
var tables = map[Language]map[string]map[string]string{
	LanguageEnglish: {
		"common": {
			"loading":        "Connecting...",
			"waitingBackend": "Waiting for backend connection",
			"snapshotView":   "Event Snapshot",
			"mute":           "Mute alerts",
			"unmute":         "Enable sound alerts",
			"noDetections":   "No detections",
			"systemNormal":   "System operating normally",
		},
		"alerts": {
			"title":         "Live Alerts",
			"event":         "events",
			"fireDetected":  "Fire Detected",
			"smokeDetected": "Smoke Detected",
			"confidence":    "Confidence",
		},
		"settings": {
			"title":          "Notification Settings",
			"emailTab":       "Email",
			"telegramTab":    "Telegram",
			"enableEmail":    "Enable email notifications",
			"smtpServer":     "SMTP Server",
			"smtpPort":       "SMTP Port",
			"senderEmail":    "Sender Email",
			"senderPassword": "Sender Password",
			"receiverEmail":  "Receiver Email",
			"enableTelegram": "Enable Telegram notifications",
			"telegramHelp":   "Create a bot with @BotFather and paste its token below.\nSend the bot a message, then use @userinfobot to find your chat id.",
			"botToken":       "Bot Token",
			"chatId":         "Chat ID",
			"test":           "Send Test",
			"save":           "Save",
			"saved":          "Settings saved",
			"testSent":       "Test notification sent",
		},
		"history": {
			"title":          "Event History",
			"loading":        "Loading...",
			"noRecords":      "No records found.",
			"time":           "Time",
			"type":           "Type",
			"confidence":     "Confidence",
			"action":         "Action",
			"viewSnapshot":   "View snapshot",
			"selectedRecord": "Selected Record",
			"selectPrompt":   "Click an event in the list to preview it.",
		},
		"stats": {
			"noData":         "No statistics yet",
			"weeklyActivity": "Weekly Activity",
		},
	},
	LanguageTurkish: {
		"common": {
			"loading":        "Bağlanıyor...",
			"waitingBackend": "Arka uç bağlantısı bekleniyor",
			"snapshotView":   "Olay Görüntüsü",
			"mute":           "Uyarıları sessize al",
			"unmute":         "Sesli uyarıları aç",
			"noDetections":   "Tespit yok",
			"systemNormal":   "Sistem normal çalışıyor",
		},
		"alerts": {
			"title":         "Canlı Uyarılar",
			"event":         "olay",
			"fireDetected":  "Yangın Tespit Edildi",
			"smokeDetected": "Duman Tespit Edildi",
			"confidence":    "Güven",
		},
		"settings": {
			"title":          "Bildirim Ayarları",
			"emailTab":       "E-posta",
			"telegramTab":    "Telegram",
			"enableEmail":    "E-posta bildirimlerini etkinleştir",
			"smtpServer":     "SMTP Sunucusu",
			"smtpPort":       "SMTP Portu",
			"senderEmail":    "Gönderen E-posta",
			"senderPassword": "Gönderen Şifresi",
			"receiverEmail":  "Alıcı E-posta",
			"enableTelegram": "Telegram bildirimlerini etkinleştir",
			"telegramHelp":   "@BotFather ile bir bot oluşturun ve token'ını aşağıya yapıştırın.\nBota bir mesaj gönderin, ardından chat id için @userinfobot kullanın.",
			"botToken":       "Bot Token",
			"chatId":         "Chat ID",
			"test":           "Test Gönder",
			"save":           "Kaydet",
			"saved":          "Ayarlar kaydedildi",
			"testSent":       "Test bildirimi gönderildi",
		},
		"history": {
			"title":          "Olay Geçmişi",
			"loading":        "Yükleniyor...",
			"noRecords":      "Kayıt bulunamadı.",
			"time":           "Zaman",
			"type":           "Tür",
			"confidence":     "Güven",
			"action":         "İşlem",
			"viewSnapshot":   "Görüntüle",
			"selectedRecord": "Seçilen Kayıt",
			"selectPrompt":   "Görüntülemek için listeden bir olaya tıklayın.",
		},
		"stats": {
			"noData":         "Henüz istatistik yok",
			"weeklyActivity": "Haftalık Aktivite",
		},
	},
}
