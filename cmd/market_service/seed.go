package main

import (
	"context"
	"fmt"
	"time"

	chatdomain "reuse_market_service/internal/chat/domain"
	chatrepository "reuse_market_service/internal/chat/repository"
	memberdomain "reuse_market_service/internal/member/domain"
	memberrepository "reuse_market_service/internal/member/repository"
	productdomain "reuse_market_service/internal/product/domain"
	productrepository "reuse_market_service/internal/product/repository"
	"reuse_market_service/pkg/encrypt"

	"github.com/google/uuid"
)

// seedDemoData 建立範例使用者/商品/訊息, 重複執行不會重複建立使用者
func seedDemoData(ctx context.Context,
	userRepo memberrepository.UserRepository,
	productRepo productrepository.ProductRepo,
	messageRepo chatrepository.MessageRepository,
) error {
	password, err := encrypt.HashPassword("123456")
	if err != nil {
		return err
	}

	seedUsers := []memberdomain.User{
		{UserID: uuid.New().String(), Email: "admin@reuse.com", Name: "Administrador", Password: password},
		{UserID: uuid.New().String(), Email: "maria@reuse.com", Name: "Maria Silva", Password: password},
		{UserID: uuid.New().String(), Email: "joao@reuse.com", Name: "João Santos", Password: password},
	}

	userIDs := make([]string, len(seedUsers))
	for i := range seedUsers {
		existing, err := userRepo.FindByUser(ctx, &memberdomain.UserQuery{Email: &seedUsers[i].Email})
		if err == nil {
			userIDs[i] = existing.UserID
			continue
		}
		if err := userRepo.CreateUser(ctx, &seedUsers[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", seedUsers[i].Email, err)
		}
		userIDs[i] = seedUsers[i].UserID
	}

	seedProducts := []productdomain.Product{
		{
			ID:          uuid.New().String(),
			Title:       "iPhone 12 em ótimo estado",
			Description: "Vendo iPhone 12 com 128GB, sem riscos na tela, bateria 85%. Acessórios originais incluídos.",
			Category:    "Eletrônicos",
			Image:       "https://images.unsplash.com/photo-1592899677977-9c10b588e183?w=400&h=400&fit=crop",
			OwnerID:     userIDs[0],
		},
		{
			ID:          uuid.New().String(),
			Title:       "Livros de programação",
			Description: "Coleção de livros sobre React, Node.js e TypeScript. Todos em excelente estado.",
			Category:    "Livros",
			Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=400&fit=crop",
			OwnerID:     userIDs[1],
		},
		{
			ID:          uuid.New().String(),
			Title:       "Mesa de escritório",
			Description: "Mesa de madeira maciça, 1.20m x 0.80m. Perfeita para home office.",
			Category:    "Móveis",
			Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=400&fit=crop",
			OwnerID:     userIDs[0],
		},
		{
			ID:          uuid.New().String(),
			Title:       "Bicicleta usada",
			Description: "Bicicleta aro 26, marchas Shimano, em bom estado de conservação.",
			Category:    "Esportes",
			Image:       "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=400&fit=crop",
			OwnerID:     userIDs[2],
		},
	}
	for i := range seedProducts {
		if err := productRepo.Create(ctx, &seedProducts[i]); err != nil {
			return fmt.Errorf("seed product %s: %w", seedProducts[i].Title, err)
		}
	}

	seedMessages := []chatdomain.Message{
		{Content: "Olá! Tenho interesse no iPhone. Ainda está disponível?", SenderID: userIDs[1], ReceiverID: userIDs[0], ProductID: seedProducts[0].ID},
		{Content: "Sim, ainda está disponível! Posso te mostrar mais detalhes.", SenderID: userIDs[0], ReceiverID: userIDs[1], ProductID: seedProducts[0].ID},
		{Content: "Qual o preço dos livros de programação?", SenderID: userIDs[2], ReceiverID: userIDs[1], ProductID: seedProducts[1].ID},
		{Content: "A mesa de escritório tem alguma marca ou defeito?", SenderID: userIDs[1], ReceiverID: userIDs[0], ProductID: seedProducts[2].ID},
	}
	for i := range seedMessages {
		seedMessages[i].ID = uuid.New().String()
		seedMessages[i].Timestamp = time.Now().Add(time.Duration(i) * time.Second)
		if err := messageRepo.Create(ctx, &seedMessages[i]); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}

	return nil
}
