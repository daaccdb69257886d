package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedProperties(ctx, pool)
	seedBookings(ctx, pool)

	log.Println("Seeding completed successfully!")
}

func seedProperties(ctx context.Context, pool *pgxpool.Pool) {
	const stmt = `
INSERT INTO properties (
    id, currency, base_rate, base_capacity, min_nights, max_nights,
    cleaning_fee, service_fee_type, service_fee_percent, extra_guest_fee,
    extra_guest_threshold, weekly_discount_percent, weekly_threshold_nights,
    monthly_discount_percent, monthly_threshold_nights,
    weekday_rates, seasonal_rates, checkin_days, checkout_days, taxes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
    $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
)
ON CONFLICT (id) DO UPDATE SET
    currency = EXCLUDED.currency,
    base_rate = EXCLUDED.base_rate,
    seasonal_rates = EXCLUDED.seasonal_rates,
    taxes = EXCLUDED.taxes,
    updated_at = now()`

	properties := []struct {
		name string
		args []any
	}{
		{
			name: "city apartment",
			args: []any{
				int64(1), "JPY", int64(12000), 2, 1, 0,
				int64(5000), "percent", 10.0, int64(2000),
				2, 10.0, 7, 20.0, 28,
				`{"friday":15000,"saturday":18000}`,
				`[{"name":"Summer Peak","start_date":"2030-07-15","end_date":"2030-08-31","rate":22000,"min_nights":2,"priority":10}]`,
				`[]`, `[]`,
				`[{"name":"Consumption Tax (10%)","rate":10,"inclusive":false,"taxable_items":["base","extra_guest","cleaning","service"]}]`,
			},
		},
		{
			name: "mountain lodge",
			args: []any{
				int64(2), "JPY", int64(30000), 4, 2, 30,
				int64(12000), "fixed", 0.0, int64(3000),
				4, 0.0, 7, 15.0, 28,
				`{}`,
				`[{"name":"Ski Season","start_date":"2030-12-15","end_date":"2031-03-15","rate":45000,"min_nights":3,"priority":20},{"name":"Golden Week","start_date":"2031-04-29","end_date":"2031-05-06","rate":50000,"priority":30}]`,
				`["saturday","sunday"]`, `["saturday","sunday"]`,
				`[{"name":"Consumption Tax (10%)","rate":10},{"name":"Onsen Tax","rate":2,"taxable_items":["base"]}]`,
			},
		},
	}
	for _, p := range properties {
		if _, err := pool.Exec(ctx, stmt, p.args...); err != nil {
			log.Fatalf("Failed to seed %s: %v", p.name, err)
		}
		log.Printf("Seeded property: %s", p.name)
	}

	if _, err := pool.Exec(ctx, `UPDATE properties SET service_fee_fixed = 4000 WHERE id = 2`); err != nil {
		log.Fatalf("Failed to set fixed service fee: %v", err)
	}
}

func seedBookings(ctx context.Context, pool *pgxpool.Pool) {
	const stmt = `
INSERT INTO bookings (property_id, checkin, checkout, status)
SELECT $1, $2::date, $3::date, $4
WHERE NOT EXISTS (
    SELECT 1 FROM bookings
    WHERE property_id = $1 AND checkin = $2::date AND checkout = $3::date
)`

	bookings := []struct {
		propertyID int64
		checkin    string
		checkout   string
		status     string
	}{
		{1, "2030-07-20", "2030-07-23", "CONFIRMED"},
		{1, "2030-08-01", "2030-08-05", "PENDING"},
		{1, "2030-08-10", "2030-08-12", "CANCELLED"},
		{2, "2030-12-21", "2030-12-28", "CONFIRMED"},
	}
	for _, b := range bookings {
		if _, err := pool.Exec(ctx, stmt, b.propertyID, b.checkin, b.checkout, b.status); err != nil {
			log.Fatalf("Failed to seed booking for property %d: %v", b.propertyID, err)
		}
	}
	log.Printf("Seeded %d bookings", len(bookings))
}
