package db

import (
	"log"
	"os"

	"saarthi/internal/models"
	"saarthi/internal/utils"

	"gorm.io/gorm"
)

// Seed populates the emotion catalogue with a starter verse set and creates
// the default legacy admin account. Runs only against empty tables.
func Seed(db *gorm.DB) {
	seedKrishnaPath(db)
	seedAdmin(db)
}

func seedKrishnaPath(db *gorm.DB) {
	var count int64
	db.Model(&models.Emotion{}).Count(&count)
	if count > 0 {
		log.Println("Krishna Path data already seeded, skipping")
		return
	}

	emotions := []models.Emotion{
		{Name: "happy", DisplayName: "Happy", Color: "#FFD700"},
		{Name: "peace", DisplayName: "Peace", Color: "#87CEEB"},
		{Name: "anxious", DisplayName: "Anxious", Color: "#FFA500"},
		{Name: "angry", DisplayName: "Angry", Color: "#FF4444"},
		{Name: "sad", DisplayName: "Sad", Color: "#6495ED"},
		{Name: "protection", DisplayName: "Protection", Color: "#32CD32"},
		{Name: "lazy", DisplayName: "Lazy", Color: "#A9A9A9"},
		{Name: "lonely", DisplayName: "Lonely", Color: "#9370DB"},
	}

	byName := make(map[string]string, len(emotions))
	for i := range emotions {
		if err := db.Create(&emotions[i]).Error; err != nil {
			log.Printf("Failed to create emotion %s: %v", emotions[i].Name, err)
			continue
		}
		byName[emotions[i].Name] = emotions[i].ID
	}

	type seedVerse struct {
		emotion     string
		sanskrit    string
		hindi       string
		english     string
		explanation string
		chapter     string
		number      string
	}
	verses := []seedVerse{
		{
			emotion:     "happy",
			sanskrit:    "आनन्दमयोऽभ्यासात्",
			hindi:       "आनंद से भरपूर अभ्यास से",
			english:     "Through practice filled with joy",
			explanation: "True joy comes from consistent spiritual practice and connecting with the divine consciousness within.",
			chapter:     "3",
			number:      "27",
		},
		{
			emotion:     "happy",
			sanskrit:    "यदा यदा हि धर्मस्य ग्लानिर्भवति भारत",
			hindi:       "जब-जब धर्म की हानि होती है भारत",
			english:     "Whenever there is a decline in righteousness, O Bharata",
			explanation: "Even in dark times, remembering Krishna's promise brings joy and hope for divine intervention.",
			chapter:     "4",
			number:      "7",
		},
		{
			emotion:     "peace",
			sanskrit:    "शान्तिः शान्तिः शान्तिः",
			hindi:       "शांति शांति शांति",
			english:     "Peace, peace, peace",
			explanation: "True peace comes from surrendering to the divine will and releasing attachment to outcomes.",
			chapter:     "2",
			number:      "47",
		},
		{
			emotion:     "peace",
			sanskrit:    "निर्द्वन्द्वो नित्यसत्त्वस्थो निर्योगक्षेम आत्मवान्",
			hindi:       "द्वन्द्वों से मुक्त, सदा सत्व में स्थित",
			english:     "Free from dualities, ever situated in goodness",
			explanation: "Peace is found by transcending the dualities of pleasure-pain, honor-dishonor through spiritual understanding.",
			chapter:     "2",
			number:      "45",
		},
		{
			emotion:     "anxious",
			sanskrit:    "मा शुचः सम्पदं दैवीमभिजातोऽसि",
			hindi:       "शोक मत करो, तुम दैवी संपदा के साथ जन्मे हो",
			english:     "Do not grieve, you are born with divine qualities",
			explanation: "Anxiety dissolves when we remember our divine nature and trust the path set before us.",
			chapter:     "16",
			number:      "5",
		},
		{
			emotion:     "angry",
			sanskrit:    "क्रोधाद्भवति सम्मोहः",
			hindi:       "क्रोध से मोह उत्पन्न होता है",
			english:     "From anger arises delusion",
			explanation: "Anger clouds judgment; observing it without acting restores clarity and self-command.",
			chapter:     "2",
			number:      "63",
		},
		{
			emotion:     "sad",
			sanskrit:    "न त्वेवाहं जातु नासं",
			hindi:       "ऐसा कभी नहीं था कि मैं नहीं था",
			english:     "Never was there a time when I did not exist",
			explanation: "Grief softens when we see that the soul is eternal and nothing truly loved is ever lost.",
			chapter:     "2",
			number:      "12",
		},
		{
			emotion:     "protection",
			sanskrit:    "अनन्याश्चिन्तयन्तो मां ये जनाः पर्युपासते",
			hindi:       "जो अनन्य भाव से मेरा चिंतन करते हैं",
			english:     "Those who worship me with undivided attention",
			explanation: "The divine carries what devotees lack and preserves what they have.",
			chapter:     "9",
			number:      "22",
		},
		{
			emotion:     "lonely",
			sanskrit:    "सर्वस्य चाहं हृदि सन्निविष्टः",
			hindi:       "मैं सबके हृदय में स्थित हूं",
			english:     "I am seated in the hearts of all beings",
			explanation: "No one is ever truly alone; the divine presence dwells within every heart.",
			chapter:     "15",
			number:      "15",
		},
	}

	for _, v := range verses {
		emotionID, ok := byName[v.emotion]
		if !ok {
			continue
		}
		verse := models.Verse{
			EmotionID:   emotionID,
			Sanskrit:    v.sanskrit,
			Hindi:       v.hindi,
			English:     v.english,
			Explanation: v.explanation,
			Chapter:     v.chapter,
			VerseNumber: v.number,
		}
		if err := db.Create(&verse).Error; err != nil {
			log.Printf("Failed to create verse for %s: %v", v.emotion, err)
		}
	}
	log.Println("Krishna Path data seeded")
}

func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash default admin password: %v", err)
		return
	}

	admin := models.Admin{Username: "admin", Password: hash, IsActive: true}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin account created")
}
