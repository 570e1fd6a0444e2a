package configs

import (
	"context"
	"log"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/services"
)

// SeedVendor creates a demo vendor account with a small menu the first time it runs.
func SeedVendor(ctx context.Context, cfg *Config, st services.Stores) error {
	if cfg.SeedVendorEmail == "" || cfg.SeedVendorPassword == "" {
		log.Println("skip seeding vendor: missing SEED_VENDOR_EMAIL/SEED_VENDOR_PASSWORD")
		return nil
	}

	u, err := services.NewUserService(st.Users).Signup(ctx, services.CredentialsInput{
		Email:    cfg.SeedVendorEmail,
		Password: cfg.SeedVendorPassword,
	})
	if apperr.KindOf(err) == apperr.KindAlreadyExists {
		log.Println("seed vendor already exists:", cfg.SeedVendorEmail)
		return nil
	}
	if err != nil {
		return err
	}

	v, err := services.NewVendorService(st).Create(ctx, u.ID, services.VendorInput{
		Name:         "Demo Kitchen",
		Address:      "1 Demo Street",
		PriceRange:   entity.PriceMedium,
		Phone:        "000-0000",
		Description:  "Seeded vendor",
		CuisineTypes: []string{"thai"},
	})
	if err != nil {
		return err
	}

	menu := services.NewMenuService(st)
	for _, in := range []services.MenuItemInput{
		{Name: "Pad Thai", Price: 9.5, Category: "mains"},
		{Name: "Green Curry", Price: 11, Category: "mains"},
		{Name: "Thai Iced Tea", Price: 3.5, Category: "drinks"},
	} {
		if _, err := menu.Create(ctx, v.ID, in); err != nil {
			return err
		}
	}
	log.Println("seeded vendor:", cfg.SeedVendorEmail)
	return nil
}
