package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"homehive/internal/booking/service"
	"homehive/internal/booking/validator"
	"homehive/pkg/client"
	"homehive/pkg/config"
	"homehive/pkg/currency"
	"homehive/pkg/model"
	"homehive/pkg/sanitizer"
	"homehive/pkg/session"
)

const ServiceName = "homehive"

func main() {
	cfg := config.Load(ServiceName)

	sessions := session.NewManager(session.ManagerConfig{
		Store:      session.NewFileStore(cfg.TokenStorePath, cfg.Log),
		RefreshURL: cfg.APIBaseURL + "/auth/refresh",
		Margin:     cfg.RefreshMargin,
		Log:        cfg.Log,
	})

	api := client.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions, cfg.Log)
	api.OnAuthFailure(func() {
		fmt.Fprintln(os.Stderr, "Your session has expired. Run `homehive login` to sign in again.")
	})

	ctx := context.Background()
	sessions.Initialize(ctx)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app := &cli{cfg: cfg, sessions: sessions, api: api}

	var err error
	switch os.Args[1] {
	case "login":
		err = app.login(ctx, os.Args[2:])
	case "logout":
		err = app.logout(ctx)
	case "whoami":
		err = app.whoami()
	case "search":
		err = app.search(ctx, os.Args[2:])
	case "listings":
		err = app.listings(ctx, os.Args[2:])
	case "featured":
		err = app.featured(ctx)
	case "book":
		err = app.book(ctx, os.Args[2:])
	case "favorite":
		err = app.favorite(ctx, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: homehive <command> [flags]

Commands:
  login     -email -password     Sign in and persist the session
  logout                         Sign out and clear the session
  whoami                         Show the signed-in identity
  search    -location -guests    Search listings
  listings  [-limit -offset]     List listings page by page
  featured                       Show featured listings
  book      -property -check-in -check-out -guests [-currency]
                                 Validate, price, and submit a booking
  favorite  -property            Toggle a listing in your favorites`)
}

type cli struct {
	cfg      *config.Config
	sessions *session.Manager
	api      *client.Client
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	user, err := c.api.Auth.Login(ctx, model.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	if user != nil {
		fmt.Printf("Signed in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	} else {
		fmt.Println("Signed in")
	}
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	if err := c.api.Auth.Logout(ctx); err != nil {
		c.cfg.Log.Warn("Server-side logout failed, local session cleared anyway", "error", err)
	}
	fmt.Println("Signed out")
	return nil
}

func (c *cli) whoami() error {
	identity := c.sessions.UserFromToken("")
	if identity == nil || !c.sessions.IsAuthenticated() {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s (%s), session expires %s\n", identity.Email, identity.Role, identity.Expiry.Format("2006-01-02 15:04"))
	return nil
}

func (c *cli) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	location := fs.String("location", "", "city or area")
	guests := fs.Int("guests", 0, "minimum guest capacity")
	_ = fs.Parse(args)

	properties, _, err := c.api.Properties.Search(ctx, model.PropertySearch{
		Location: sanitizer.NormalizeLocation(*location),
		Guests:   *guests,
	})
	if err != nil {
		return err
	}

	printProperties(properties)
	return nil
}

func (c *cli) listings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("listings", flag.ExitOnError)
	limit := fs.Int("limit", c.cfg.PaginationLimit, "page size")
	offset := fs.Int64("offset", 0, "page offset")
	_ = fs.Parse(args)

	properties, metadata, err := c.api.Properties.GetAll(ctx, config.NormalizePaginationLimit(*limit), *offset)
	if err != nil {
		return err
	}

	printProperties(properties)
	if metadata != nil {
		fmt.Printf("Showing %d of %d listings\n", len(properties), metadata.TotalCount)
	}
	return nil
}

func (c *cli) featured(ctx context.Context) error {
	properties, err := c.api.Properties.Featured(ctx)
	if err != nil {
		return err
	}
	printProperties(properties)
	return nil
}

func (c *cli) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	propertyID := fs.String("property", "", "property id")
	checkIn := fs.String("check-in", "", "check-in date (YYYY-MM-DD)")
	checkOut := fs.String("check-out", "", "check-out date (YYYY-MM-DD)")
	guests := fs.Int("guests", 1, "guest count")
	displayCurrency := fs.String("currency", c.cfg.DisplayCurrency, "display currency")
	_ = fs.Parse(args)

	property, err := c.api.Properties.GetByID(ctx, *propertyID)
	if err != nil {
		return err
	}

	workflow := service.NewWorkflow(service.WorkflowConfig{
		Bookings:        c.api.Bookings,
		Auth:            c.sessions,
		Validator:       validator.NewDraftValidator(c.cfg.Log),
		Converter:       currency.NewStaticConverter(),
		DisplayCurrency: *displayCurrency,
		Log:             c.cfg.Log,
	})
	workflow.SetProperty(property)
	workflow.SetCheckIn(*checkIn)
	workflow.SetCheckOut(*checkOut)
	workflow.SetGuests(*guests)

	available, err := workflow.CheckAvailability(ctx)
	if err != nil {
		return err
	}
	if !available {
		if fieldErrors := workflow.FieldErrors(); len(fieldErrors) > 0 {
			for field, message := range fieldErrors {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, message)
			}
			return fmt.Errorf("booking request is invalid")
		}
		return fmt.Errorf("%s", workflow.GeneralError())
	}

	quote, err := workflow.Quote()
	if err != nil {
		return err
	}
	fmt.Printf("%d night(s) x %.2f %s = %.2f %s\n",
		quote.Nights, quote.PricePerNight, quote.Currency, quote.Total, quote.Currency)

	booking, err := workflow.Submit(ctx)
	if err != nil {
		if msg := workflow.GeneralError(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}

	fmt.Printf("Booked %s: %s to %s, %d guest(s), status %s\n",
		booking.ID, booking.CheckIn, booking.CheckOut, booking.Guests, booking.Status)
	return nil
}

func (c *cli) favorite(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("favorite", flag.ExitOnError)
	propertyID := fs.String("property", "", "property id")
	_ = fs.Parse(args)

	favorites := service.NewFavoriteSet(c.api.Favorites, c.cfg.Log)
	if err := favorites.Reload(ctx); err != nil {
		return err
	}

	nowFavorite, err := favorites.Toggle(ctx, *propertyID)
	if err != nil {
		return err
	}

	if nowFavorite {
		fmt.Println("Added to favorites")
	} else {
		fmt.Println("Removed from favorites")
	}
	return nil
}

func printProperties(properties []*model.Property) {
	if len(properties) == 0 {
		fmt.Println("No listings found")
		return
	}
	for _, p := range properties {
		fmt.Printf("%s  %-40s %s  %.2f %s/night  up to %d guests  %.1f★ (%d)\n",
			p.ID, p.Title, p.Location, p.NightlyPrice, p.Currency, p.MaxGuests, p.Rating, p.ReviewCount)
	}
}
