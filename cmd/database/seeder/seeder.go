package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ppdew9811-hash/eduvoice/entities"
	"github.com/ppdew9811-hash/eduvoice/pkg/credit"
	"github.com/ppdew9811-hash/eduvoice/pkg/voice"
)

// Seed fills the credit package and celebrity voice catalogs. It is
// idempotent: a catalog that already has rows is left alone, so running
// it on every startup is safe.
func Seed(creditRepository credit.CreditRepository, voiceRepository voice.VoiceRepository) error {
	ctx := context.Background()

	if err := seedCreditPackages(ctx, creditRepository); err != nil {
		return err
	}
	if err := seedCelebrityVoices(ctx, voiceRepository); err != nil {
		return err
	}

	fmt.Println("Catalog seeding complete")
	return nil
}

func seedCreditPackages(ctx context.Context, repo credit.CreditRepository) error {
	existing, err := repo.GetCreditPackages(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	packages := []entities.CreditPackage{
		{Name: "Paket Starter", Credits: 100, Price: 50000},
		{Name: "Paket Reguler", Credits: 250, Price: 100000},
		{Name: "Paket Pro", Credits: 500, Price: 180000},
		{Name: "Premium 1 Bulan", Credits: 1000, Price: 299000, IsPremium: true, PremiumDurationDays: 30},
		{Name: "Premium 3 Bulan", Credits: 3500, Price: 799000, IsPremium: true, PremiumDurationDays: 90},
		{Name: "Premium 1 Tahun", Credits: 15000, Price: 2499000, IsPremium: true, PremiumDurationDays: 365},
	}

	for _, pkg := range packages {
		pkg.ID = uuid.New()
		pkg.Currency = "IDR"
		pkg.IsActive = true
		pkg.CreatedAt = time.Now()
		pkg.UpdatedAt = time.Now()
		if err := repo.CreateCreditPackage(ctx, &pkg); err != nil {
			return err
		}
	}
	return nil
}

func seedCelebrityVoices(ctx context.Context, repo voice.VoiceRepository) error {
	existing, err := repo.GetCelebrityVoices(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	voices := []entities.CelebrityVoice{
		{
			Name:        "Gibran Rakabuming Raka",
			Description: "Politisi muda dengan suara yang tegas dan jelas",
			Category:    "politician",
			ImageURL:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=200",
		},
		{
			Name:        "Najwa Shihab",
			Description: "Jurnalis dan presenter dengan artikulasi yang baik",
			Category:    "journalist",
			ImageURL:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=200",
		},
		{
			Name:        "Raditya Dika",
			Description: "Comedian dengan gaya bicara santai dan humoris",
			Category:    "comedian",
			ImageURL:    "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?w=200",
		},
		{
			Name:        "Deddy Corbuzier",
			Description: "Podcaster dengan suara yang kuat dan energik",
			Category:    "influencer",
			ImageURL:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200",
		},
		{
			Name:        "Rocky Gerung",
			Description: "Filosof dan aktivis dengan gaya bicara kritis dan analitis",
			Category:    "intellectual",
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
		},
		{
			Name:        "Tirta Mandira Hudhi",
			Description: "Dokter dan content creator dengan penjelasan yang lugas",
			Category:    "doctor",
			ImageURL:    "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=200",
		},
	}

	for _, v := range voices {
		v.ID = uuid.New()
		v.SimilarityScore = 0.90
		v.CreatedAt = time.Now()
		v.UpdatedAt = time.Now()
		if err := repo.CreateCelebrityVoice(ctx, &v); err != nil {
			return err
		}
	}
	return nil
}
