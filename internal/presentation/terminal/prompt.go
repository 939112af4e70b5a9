package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
)

// choose prints a numbered menu and re-prompts until a valid index is entered.
func choose[T fmt.Stringer](ctx context.Context, s *Session, title string, items []T) (T, error) {
	var zero T
	for {
		s.printf("\n%s\n", title)
		for i, item := range items {
			s.printf("%d. %s\n", i+1, item)
		}
		s.printf("Enter choice (1-%d): ", len(items))

		line, err := s.readLine(ctx)
		if err != nil {
			return zero, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			s.println("Invalid input. Please enter a number.")
			continue
		}
		if n < 1 || n > len(items) {
			s.printf("Invalid choice. Please enter a number between 1 and %d\n", len(items))
			continue
		}
		return items[n-1], nil
	}
}

func (s *Session) selectSize(ctx context.Context) (domain.Size, error) {
	return choose(ctx, s, "Select size:", domain.Sizes())
}

func (s *Session) selectGrind(ctx context.Context) (domain.GrindType, error) {
	return choose(ctx, s, "Select grind type:", domain.GrindTypes())
}

func (s *Session) selectBeverage(ctx context.Context) (domain.Beverage, error) {
	for {
		s.println("\nSelect beverage category:")
		s.println("1. Coffee")
		s.println("2. Soda")
		s.print("Enter choice (1-2): ")

		line, err := s.readLine(ctx)
		if err != nil {
			return domain.Beverage{}, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			s.println("Invalid input. Please enter a number.")
			continue
		}
		switch n {
		case 1:
			v, err := choose(ctx, s, "Select coffee type:", domain.CoffeeVariants())
			if err != nil {
				return domain.Beverage{}, err
			}
			return domain.Coffee(v), nil
		case 2:
			v, err := choose(ctx, s, "Select soda type:", domain.SodaVariants())
			if err != nil {
				return domain.Beverage{}, err
			}
			return domain.Soda(v), nil
		default:
			s.println("Invalid choice. Please enter 1 or 2.")
		}
	}
}

// selectAdditions reads one comma-separated line. Bad tokens are skipped with a warning.
func (s *Session) selectAdditions(ctx context.Context) ([]domain.Addition, error) {
	all := domain.Additions()

	s.println("\nSelect additions (comma-separated, or press Enter for none):")
	for i, a := range all {
		s.printf("%d. %s\n", i+1, a)
	}
	s.print("Enter choices (e.g., 1,3,5): ")

	line, err := s.readLine(ctx)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	var picked []domain.Addition
	for _, tok := range strings.Split(line, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		switch {
		case err != nil:
			s.printf("Warning: Skipping invalid input: %s\n", tok)
		case n < 1 || n > len(all):
			s.printf("Warning: Skipping invalid choice: %s\n", tok)
		default:
			picked = append(picked, all[n-1])
		}
	}
	return picked, nil
}
