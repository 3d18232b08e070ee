package main

import (
	"time"

	"github.com/lumapos/internal/config"
	"github.com/lumapos/internal/constants"
	"github.com/lumapos/internal/logger"
	"github.com/lumapos/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 商品
	products := []models.Product{
		{
			Name:           "Basmati Rice 5kg",
			SKU:            "RICE-5KG",
			Barcode:        "4791234500011",
			Category:       "groceries",
			PriceAmount:    money(2450),
			CostAmount:     money(2100),
			Unit:           "bag",
			Taxable:        true,
			TrackInventory: true,
			Stock:          120,
			MinStock:       20,
			IsActive:       true,
			SortOrder:      1,
		},
		{
			Name:           "Ceylon Tea 200g",
			SKU:            "TEA-200G",
			Barcode:        "4791234500028",
			Category:       "groceries",
			PriceAmount:    money(780),
			CostAmount:     money(560),
			Unit:           "pack",
			Taxable:        true,
			TrackInventory: true,
			Stock:          200,
			MinStock:       30,
			IsActive:       true,
			SortOrder:      2,
		},
		{
			Name:          "Tomatoes",
			SKU:           "VEG-TOMATO",
			Category:      "produce",
			IsWeightBased: true,
			PricePerUnit:  money(390),
			Unit:          "kg",
			Taxable:       false,
			IsActive:      true,
			SortOrder:     3,
		},
		{
			Name:           "Hand Soap",
			SKU:            "SOAP-STD",
			Barcode:        "4791234500035",
			Category:       "household",
			PriceAmount:    money(150),
			CostAmount:     money(90),
			Unit:           "pc",
			Taxable:        true,
			TrackInventory: true,
			Stock:          300,
			MinStock:       50,
			IsActive:       true,
			SortOrder:      4,
		},
	}
	for i := range products {
		if err := models.DB.Where("sku = ?", products[i].SKU).
			FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", products[i].SKU, err)
		}
	}

	// 客户
	customers := []models.Customer{
		{
			Name:        "Nimal Perera",
			Phone:       "0771234567",
			PriceTier:   constants.PriceTierStandard,
			CreditLimit: money(0),
		},
		{
			Name:        "Sunrise Hotel",
			Phone:       "0112345678",
			Email:       "purchasing@sunrisehotel.example",
			PriceTier:   constants.PriceTierWholesale,
			CreditLimit: money(250000),
		},
		{
			Name:        "Kumari Silva",
			Phone:       "0719876543",
			PriceTier:   constants.PriceTierVIP,
			CreditLimit: money(50000),
		},
	}
	for i := range customers {
		if err := models.DB.Where("phone = ?", customers[i].Phone).
			FirstOrCreate(&customers[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed customer %s: %v", customers[i].Name, err)
		}
	}

	// 折扣（有效期缺失的折扣不会生效，统一给一年窗口）
	weekend := models.IntArray{0, 6}
	validFrom := time.Now().AddDate(0, 0, -1)
	validTo := time.Now().AddDate(1, 0, 0)
	discounts := []models.Discount{
		{
			Name:        "Big Basket 10%",
			Description: "10% off carts over 5000, capped at 1500",
			Type:        constants.DiscountTypePercentage,
			Value:       money(10),
			MaxDiscount: money(1500),
			ValidFrom:   &validFrom,
			ValidTo:     &validTo,
			IsActive:    true,
			Conditions: []models.DiscountCondition{
				{Type: constants.ConditionTypeMinAmount, MinAmount: money(5000)},
			},
		},
		{
			Name:        "Weekend Card Saver",
			Description: "Flat 250 off on weekend visa payments",
			Type:        constants.DiscountTypeFixed,
			Value:       money(250),
			ValidFrom:   &validFrom,
			ValidTo:     &validTo,
			ValidDays:   weekend,
			IsActive:    true,
			Conditions: []models.DiscountCondition{
				{Type: constants.ConditionTypePaymentMethod, PaymentMethod: constants.PaymentMethodCard},
				{Type: constants.ConditionTypeCardType, CardType: constants.CardTypeVisa},
				{Type: constants.ConditionTypeMinAmount, MinAmount: money(2000)},
			},
		},
		{
			Name:             "Tea Lover Gift",
			Description:      "Free soap with two tea packs",
			Type:             constants.DiscountTypeFreeGift,
			Value:            money(0),
			FreeGiftProducts: models.UintArray{products[3].ID},
			ValidFrom:        &validFrom,
			ValidTo:          &validTo,
			IsActive:         true,
			Conditions: []models.DiscountCondition{
				{
					Type:        constants.ConditionTypeSpecificProducts,
					ProductIDs:  models.UintArray{products[1].ID},
					MinQuantity: 2,
				},
			},
		},
	}
	for i := range discounts {
		if err := models.DB.Where("name = ?", discounts[i].Name).
			FirstOrCreate(&discounts[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed discount %s: %v", discounts[i].Name, err)
		}
	}

	stdLog.Printf("Seed completed: %d products, %d customers, %d discounts",
		len(products), len(customers), len(discounts))
}

func money(v int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(v))
}
