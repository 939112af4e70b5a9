package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	apporder "github.com/Zhima-Mochi/brewterm/internal/application/order"
	domain "github.com/Zhima-Mochi/brewterm/internal/domain/order"
	"github.com/Zhima-Mochi/brewterm/internal/observability"
	"github.com/Zhima-Mochi/brewterm/internal/observability/logctx"
)

// OrderService is what the session needs from the application layer.
type OrderService interface {
	CreateOrder(ctx context.Context, in apporder.CreateOrderInput) (*apporder.CreateOrderResult, error)
	ListOrders(ctx context.Context) []*domain.Order
}

// Session is the line-oriented order terminal. It is not safe for concurrent use.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
	svc OrderService
	log observability.Logger
}

func NewSession(in io.Reader, out io.Writer, svc OrderService, log observability.Logger) *Session {
	if log == nil {
		log = observability.NopLogger()
	}
	return &Session{
		in:  bufio.NewScanner(in),
		out: out,
		svc: svc,
		log: log.With(observability.F("component", "terminal")),
	}
}

// Run drives the main menu until the user exits or input ends. It returns
// ctx.Err() when the context is cancelled and nil on a normal exit.
func (s *Session) Run(ctx context.Context) error {
	s.println("=== Coffee Order System ===")
	s.log.Debug("session_started")

	for {
		s.println("\nWhat would you like to do?")
		s.println("1. Create new order")
		s.println("2. View all orders")
		s.println("3. Exit")
		s.print("Enter your choice (1-3): ")

		choice, err := s.readLine(ctx)
		if err != nil {
			return s.end(err)
		}

		switch choice {
		case "1":
			if err := s.createOrder(WithCommandContext(ctx, s.log, "create_order", nil)); err != nil {
				return s.end(err)
			}
		case "2":
			s.viewOrders(WithCommandContext(ctx, s.log, "view_orders", nil))
		case "3":
			s.println("Thank you for using the Coffee Order System!")
			s.log.Debug("session_ended", observability.F("reason", "exit"))
			return nil
		default:
			s.println("Invalid choice. Please try again.")
			s.println()
		}
	}
}

func (s *Session) end(err error) error {
	if errors.Is(err, io.EOF) {
		s.log.Debug("session_ended", observability.F("reason", "eof"))
		return nil
	}
	s.log.Warn("session_ended", observability.F("reason", "error"), observability.F("error", err))
	return err
}

func (s *Session) createOrder(ctx context.Context) error {
	s.println("\n=== Create New Order ===")

	size, err := s.selectSize(ctx)
	if err != nil {
		return err
	}
	beverage, err := s.selectBeverage(ctx)
	if err != nil {
		return err
	}

	grind := domain.GrindNone
	if beverage.Family() == domain.FamilySoda {
		s.println("Grind type automatically set to 'None' for soda orders.")
	} else if grind, err = s.selectGrind(ctx); err != nil {
		return err
	}

	additions, err := s.selectAdditions(ctx)
	if err != nil {
		return err
	}

	res, err := s.svc.CreateOrder(ctx, apporder.CreateOrderInput{
		Size:      size,
		Grind:     grind,
		Beverage:  beverage,
		Additions: additions,
	})
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		logctx.FromOr(ctx, s.log).Error("create_order_failed", observability.F("error", err))
		s.printf("\nCould not create order: %v\n", err)
		return nil
	}

	s.println("\n✓ Order created successfully!")
	s.printf("Order ID: %s\n", res.Order.ID())
	return nil
}

func (s *Session) viewOrders(ctx context.Context) {
	s.println("\n=== All Orders ===")

	orders := s.svc.ListOrders(ctx)
	if len(orders) == 0 {
		s.println("No orders found.")
		return
	}

	s.printf("Total orders: %d\n", len(orders))
	s.println()
	for _, o := range orders {
		s.println(o.Summary())
	}
}

// readLine returns the next trimmed line, io.EOF at end of input, or ctx.Err().
func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("terminal: read input: %w", err)
		}
		return "", io.EOF
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) print(a ...any)                 { _, _ = fmt.Fprint(s.out, a...) }
func (s *Session) println(a ...any)               { _, _ = fmt.Fprintln(s.out, a...) }
func (s *Session) printf(format string, a ...any) { _, _ = fmt.Fprintf(s.out, format, a...) }
