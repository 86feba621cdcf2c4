package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"repairshop/internal/config"
	"repairshop/internal/database"
	"repairshop/internal/domain"
	"repairshop/internal/modules/auth"
	"repairshop/internal/modules/repair"
	"repairshop/internal/repository"
)

// Seeds the database with demo data for local development.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM repair_services")
	db.Exec("DELETE FROM service_parts")
	db.Exec("DELETE FROM repairs")
	db.Exec("DELETE FROM parts")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM devices")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	repairRepo := repository.NewRepairRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	partRepo := repository.NewPartRepository(db)

	authService := auth.NewService(userRepo, sessionRepo, cfg.SessionPepper, cfg.SessionTTL)
	repairService := repair.NewService(repairRepo, customerRepo, deviceRepo, serviceRepo)

	// ================== USERS ==================
	log.Println("Creating users...")

	if _, err := authService.CreateUser(ctx, auth.CreateUserRequest{
		Username: "admin", Password: "admin123", Role: "admin",
	}); err != nil {
		log.Fatal("create admin failed:", err)
	}
	log.Println("Admin created: admin / admin123")

	for i := 1; i <= 2; i++ {
		if _, err := authService.CreateUser(ctx, auth.CreateUserRequest{
			Username: fmt.Sprintf("staff%d", i), Password: "staff123", Role: "staff",
		}); err != nil {
			log.Fatal("create staff failed:", err)
		}
	}

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	customers := []domain.Customer{
		{Name: "Jane Doe", Address: "12 Elm Street", Phone: "555-1234"},
		{Name: "Tom Brown", Address: "45 Oak Avenue", Phone: "555-2345"},
		{Name: "Maria Lopez", Phone: "555-3456"},
	}
	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i]); err != nil {
			log.Fatal("create customer failed:", err)
		}
	}

	// ================== DEVICES ==================
	log.Println("Creating devices...")
	devices := []domain.Device{
		{DeviceType: "smartphone", Model: "iPhone 12", SerialNumber: "SN-IP12-0001"},
		{DeviceType: "laptop", Model: "ThinkPad X1", SerialNumber: "SN-TPX1-0002"},
		{DeviceType: "tablet", Model: "Galaxy Tab S8", SerialNumber: "SN-GTS8-0003"},
	}
	for i := range devices {
		if err := deviceRepo.Create(ctx, &devices[i]); err != nil {
			log.Fatal("create device failed:", err)
		}
	}

	// ================== SERVICES & PARTS ==================
	log.Println("Creating services and parts...")
	services := []domain.Service{
		{Description: "Screen replacement", Charge: 89.99},
		{Description: "Battery replacement", Charge: 49.50},
		{Description: "Diagnostics", Charge: 25.00},
	}
	for i := range services {
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("create service failed:", err)
		}
	}

	parts := []domain.Part{
		{PartNumber: "SCR-IP12", Description: "iPhone 12 OLED screen", QuantityInStock: 8, Cost: 54.20},
		{PartNumber: "BAT-UNI-3000", Description: "3000mAh battery", QuantityInStock: 15, Cost: 12.80},
	}
	for i := range parts {
		if err := partRepo.Create(ctx, &parts[i]); err != nil {
			log.Fatal("create part failed:", err)
		}
	}

	// Bill of materials
	if err := serviceRepo.AddPart(ctx, &domain.ServicePart{
		ServiceID: services[0].ID, PartID: parts[0].ID, QuantityRequired: 1,
	}); err != nil {
		log.Fatal("add service part failed:", err)
	}
	if err := serviceRepo.AddPart(ctx, &domain.ServicePart{
		ServiceID: services[1].ID, PartID: parts[1].ID, QuantityRequired: 1,
	}); err != nil {
		log.Fatal("add service part failed:", err)
	}

	// ================== REPAIRS ==================
	log.Println("Creating repairs...")
	problems := []string{"cracked screen", "battery drains fast", "will not boot"}
	for i, problem := range problems {
		rp, err := repairService.CreateRepair(ctx, repair.CreateRepairRequest{
			CustomerID:         customers[i%len(customers)].ID,
			DeviceID:           devices[i%len(devices)].ID,
			ProblemDescription: problem,
		})
		if err != nil {
			log.Fatal("create repair failed:", err)
		}

		// spread out statuses so the dashboard has something to show
		switch i % 3 {
		case 1:
			if _, err := repairService.UpdateStatus(ctx, rp.ID, domain.RepairInProgress); err != nil {
				log.Fatal("update status failed:", err)
			}
		case 2:
			if _, err := repairService.UpdateStatus(ctx, rp.ID, domain.RepairCompleted); err != nil {
				log.Fatal("update status failed:", err)
			}
			if _, err := repairService.AddService(ctx, rp.ID, repair.AddServiceRequest{
				ServiceID: services[2].ID,
			}); err != nil {
				log.Fatal("add repair service failed:", err)
			}
		}
	}

	log.Println("Seed completed.")
}
