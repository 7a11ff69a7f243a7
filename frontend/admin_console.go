// Admin console: a terminal rendition of the admin user table. It logs in, keeps the
// listing state as URL parameters and re-fetches on every change.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/client"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type console struct {
	mu       sync.Mutex
	out      io.Writer
	api      *client.Client
	listing  *client.Listing
	location url.Values // current query parameters; the only source of listing state
	log      zerolog.Logger
}

func newConsole(out io.Writer, api *client.Client, log zerolog.Logger) *console {
	return &console{out: out, api: api, listing: client.NewListing(api), location: url.Values{}, log: log}
}

// navigate merges update into the location and reloads the listing.
func (c *console) navigate(ctx context.Context, update map[string]string) {
	c.mu.Lock()
	c.location = core.EncodeQueryState(update, c.location)
	q := core.DecodeQueryState(c.location)
	c.mu.Unlock()

	if err := c.listing.Load(ctx, q); err != nil && !errors.Is(err, client.ErrSuperseded) {
		c.log.Warn().Err(err).Msg("load users failed")
	}
	c.render()
}

func (c *console) render() {
	c.mu.Lock()
	defer c.mu.Unlock()
	renderView(c.out, c.listing.View())
}

// renderView draws the table and the pager. It fetches nothing.
func renderView(out io.Writer, v client.View) {
	if v.Err != nil {
		fmt.Fprintf(out, "! failed to load users: %v (showing last results)\n", v.Err)
	}
	fmt.Fprintf(out, "search: %q  sort: %s %s\n", v.State.Search, v.State.SortBy, v.State.SortOrder)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tROLE\tPROJECTS\tCREATED\tUPDATED")
	if len(v.Users) == 0 {
		fmt.Fprintln(tw, "No users found\t\t\t\t\t")
	}
	for _, u := range v.Users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.DisplayName(), u.Email, u.Role, projectTitles(u.Projects),
			u.CreatedAt.Format(dateLayout), u.UpdatedAt.Format(dateLayout))
	}
	_ = tw.Flush()

	p := core.Pager{Current: v.Pagination.Page, Total: v.Pagination.TotalPages}
	if !p.Visible() {
		return
	}
	var b strings.Builder
	if _, ok := p.Prev(); ok {
		b.WriteString("< ")
	}
	for _, n := range p.Pages() {
		if n == p.Current {
			fmt.Fprintf(&b, "[%d] ", n)
		} else {
			fmt.Fprintf(&b, "%d ", n)
		}
	}
	if _, ok := p.Next(); ok {
		b.WriteString(">")
	}
	fmt.Fprintf(out, "%s  (%d users)\n", strings.TrimSpace(b.String()), v.Pagination.TotalCount)
}

func projectTitles(ps []models.ProjectSummary) string {
	if len(ps) == 0 {
		return "-"
	}
	titles := make([]string, 0, len(ps))
	for _, p := range ps {
		titles = append(titles, p.Title)
	}
	return strings.Join(titles, ", ")
}

// command maps one input line to a location update; ok is false for unknown input.
func command(line string, v client.View) (update map[string]string, ok bool) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	p := core.Pager{Current: v.Pagination.Page, Total: v.Pagination.TotalPages}
	switch cmd {
	case "n", "next":
		if n, ok := p.Next(); ok {
			return core.PageUpdate(n), true
		}
		return nil, true
	case "p", "prev":
		if n, ok := p.Prev(); ok {
			return core.PageUpdate(n), true
		}
		return nil, true
	case "g", "page":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || (p.Total > 0 && n > p.Total) {
			return nil, false
		}
		return core.PageUpdate(n), true
	case "sort":
		col, valid := core.ParseSortColumn(arg)
		if !valid {
			return nil, false
		}
		return core.SortUpdate(v.State, col), true
	}
	return nil, false
}

const help = `commands:
  /<text>        search (applied after you stop typing)
  n | p          next / previous page
  g <n>          go to page n
  sort <column>  name, email, role, createdAt, updatedAt (again to flip order)
  r              reload
  q              quit`

func main() {
	base := flag.String("api", "http://localhost:8080", "API base URL")
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	ctx := context.Background()

	api := client.New(*base, nil, nil)
	if _, err := api.Login(ctx, *email, *password); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}
	if !api.Session().IsAdmin() {
		log.Fatal().Str("email", *email).Msg("this account cannot view the user listing")
	}

	c := newConsole(os.Stdout, api, log)
	search := client.NewDebouncer("", client.DefaultDebounce, func(text string) {
		c.navigate(ctx, core.SearchUpdate(text))
	})
	defer search.Stop()

	fmt.Fprintln(os.Stdout, help)
	c.navigate(ctx, nil)

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		line := in.Text()
		switch {
		case line == "q":
			return
		case line == "r":
			c.navigate(ctx, nil)
		case strings.HasPrefix(line, "/"):
			search.Input(strings.TrimPrefix(line, "/"))
		default:
			update, ok := command(line, c.listing.View())
			if !ok {
				fmt.Fprintln(os.Stdout, help)
				continue
			}
			if update != nil {
				c.navigate(ctx, update)
			}
		}
	}
}
