// Package seed populates a fresh database with the demo marketplace
// data: two open projects and two directory subcontractors.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/raedalharbi/muqawil/internal/domain/actor"
	"github.com/raedalharbi/muqawil/internal/domain/project"
)

func demoActors(now time.Time) []actor.Actor {
	return []actor.Actor{
		{
			ID:        "user1",
			Name:      "شركة الإعمار",
			Role:      actor.RoleMainContractor,
			Email:     "main@ex.com",
			Location:  "الرياض",
			CreatedAt: now,
		},
		{
			ID:             "sub1",
			Name:           "مؤسسة التميز للكهرباء",
			Role:           actor.RoleSubcontractor,
			Email:          "elec@ex.com",
			Trade:          actor.TradeElectrical,
			Experience:     actor.ExperienceExpert,
			Certifications: []string{"تصنيف فئة أولى", "ISO 9001"},
			Rating:         4.8,
			Location:       "الرياض",
			CreatedAt:      now,
		},
		{
			ID:             "sub2",
			Name:           "شركة روافد للسباكة",
			Role:           actor.RoleSubcontractor,
			Email:          "plumb@ex.com",
			Trade:          actor.TradePlumbing,
			Experience:     actor.ExperienceIntermediate,
			Certifications: []string{"بلدي المعتمدة"},
			Rating:         4.2,
			Location:       "جدة",
			CreatedAt:      now,
		},
	}
}

func demoProjects(now time.Time) []project.Project {
	return []project.Project{
		{
			ID:              "1",
			Title:           "بناء فيلا سكنية - حي النرجس",
			Description:     "مشروع بناء فيلا دورين وملحق بمساحة 400 متر مربع شاملة العظم والمواد.",
			Budget:          500000,
			BudgetFormatted: project.FormatBudget(500000),
			Location:        "الرياض",
			Deadline:        "2024-12-30",
			Category:        actor.TradeCivil,
			PostedBy:        "user1",
			CreatedAt:       now,
			Status:          project.StatusOpen,
		},
		{
			ID:              "2",
			Title:           "تركيب أنظمة تكييف مركزي",
			Description:     "توريد وتركيب أنظمة تكييف لبرج تجاري مكون من 10 طوابق.",
			Budget:          1200000,
			BudgetFormatted: project.FormatBudget(1200000),
			Location:        "جدة",
			Deadline:        "2025-01-15",
			Category:        actor.TradeHVAC,
			PostedBy:        "user1",
			CreatedAt:       now,
			Status:          project.StatusOpen,
		},
	}
}

// Run inserts the demo data. It expects an empty database.
func Run(ctx context.Context, actors actor.Repository, projects project.Repository) error {
	now := time.Now()

	for _, act := range demoActors(now) {
		if err := actors.Create(ctx, &act); err != nil {
			return fmt.Errorf("seeding actor %s: %w", act.ID, err)
		}
	}
	for _, proj := range demoProjects(now) {
		if err := projects.Create(ctx, &proj); err != nil {
			return fmt.Errorf("seeding project %s: %w", proj.ID, err)
		}
	}

	return nil
}
