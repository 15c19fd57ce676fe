package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/vtgate-go/vtgate-go-sdk"
	"github.com/vtgate-go/vtgate-go-sdk/log"
	"github.com/vtgate-go/vtgate-go-sdk/proto/querypb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/topodatapb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgatepb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtrpcpb"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
//
//nolint:funlen
func run(args []string, stdout, stderr io.Writer) int {
	var (
		flags       = flag.NewFlagSet("vtgate-cli", flag.ContinueOnError)
		logger      = stdlog.New(stderr, "", 0)
		addr        string
		stream      bool
		keyspace    string
		tabletType  string
		srvKeyspace string
		principal   string
		verbose     bool
	)
	flags.SetOutput(stderr)
	flags.StringVar(&addr,
		"addr", "",
		"vtgate grpc address, VTGATE_ENDPOINT is used if empty",
	)
	flags.BoolVar(&stream,
		"stream", false,
		"use StreamExecute instead of Execute",
	)
	flags.StringVar(&keyspace,
		"keyspace", "",
		"target keyspace[:shard]",
	)
	flags.StringVar(&tabletType,
		"tablet-type", "master",
		"tablet type to route query to",
	)
	flags.StringVar(&srvKeyspace,
		"srv-keyspace", "",
		"print serving keyspace instead of executing query",
	)
	flags.StringVar(&principal,
		"principal", os.Getenv("USER"),
		"caller id principal",
	)
	flags.BoolVar(&verbose,
		"v", false,
		"log gateway calls",
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	tt, has := topodatapb.TabletType_value[strings.ToUpper(tabletType)]
	if !has {
		logger.Printf("unknown tablet type %q", tabletType)

		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []vtgate.Option{
		vtgate.WithConfigFromEnv(),
	}
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			logger.Print(err)

			return 1
		}
		defer func() {
			_ = l.Sync()
		}()
		opts = append(opts, vtgate.WithLogger(log.Zap(l), trace.DetailsAll))
	}

	db, err := vtgate.Open(ctx, addr, opts...)
	if err != nil {
		logger.Print(err)

		return 1
	}
	defer func() {
		_ = db.Close(ctx)
	}()

	callerID := &vtrpcpb.CallerID{Principal: principal, Component: "vtgate-cli"}

	switch {
	case srvKeyspace != "":
		err = printSrvKeyspace(ctx, stdout, db, srvKeyspace)
	case flags.NArg() != 1:
		err = fmt.Errorf("expected exactly one query argument, got %d", flags.NArg())
	case stream:
		err = streamExecute(ctx, stdout, db, &vtgatepb.StreamExecuteRequest{
			CallerId:      callerID,
			Query:         &querypb.BoundQuery{Sql: flags.Arg(0)},
			TabletType:    tt,
			KeyspaceShard: keyspace,
		})
	default:
		err = execute(ctx, stdout, db, &vtgatepb.ExecuteRequest{
			CallerId:      callerID,
			Session:       &vtgatepb.Session{Autocommit: true},
			Query:         &querypb.BoundQuery{Sql: flags.Arg(0)},
			TabletType:    tt,
			KeyspaceShard: keyspace,
		})
	}
	if err != nil {
		logger.Print(err)

		return 1
	}

	return 0
}

func printSrvKeyspace(ctx context.Context, w io.Writer, db vtgate.Connection, keyspace string) error {
	response, err := db.Gateway().GetSrvKeyspace(ctx, &vtgatepb.GetSrvKeyspaceRequest{Keyspace: keyspace})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, response.GetSrvKeyspace().String())

	return err
}

func execute(ctx context.Context, w io.Writer, db vtgate.Connection, request *vtgatepb.ExecuteRequest) error {
	response, err := db.Gateway().Execute(ctx, request)
	if err != nil {
		return err
	}
	if response.GetError() != nil {
		return fmt.Errorf("vtgate: %s", response.GetError().GetMessage())
	}
	p := newPrinter(w)
	if err = p.print(response.GetResult()); err != nil {
		return err
	}

	return p.finish()
}

func streamExecute(
	ctx context.Context, w io.Writer, db vtgate.Connection, request *vtgatepb.StreamExecuteRequest,
) error {
	s, err := db.Gateway().StreamExecute(ctx, request)
	if err != nil {
		return err
	}
	defer s.Close()

	p := newPrinter(w)
	for response, err := range s.All(ctx) {
		if err != nil {
			return err
		}
		if err = p.print(response.GetResult()); err != nil {
			return err
		}
	}

	return p.finish()
}

// printer writes rows as aligned columns, header comes from the first result with fields
type printer struct {
	tw       *tabwriter.Writer
	header   bool
	rows     uint64
	affected uint64
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
	}
}

func (p *printer) print(result *querypb.QueryResult) error {
	if result == nil {
		return nil
	}
	if !p.header && len(result.GetFields()) > 0 {
		names := make([]string, 0, len(result.GetFields()))
		for _, f := range result.GetFields() {
			names = append(names, f.GetName())
		}
		if _, err := fmt.Fprintln(p.tw, strings.Join(names, "\t")); err != nil {
			return err
		}
		p.header = true
	}
	for _, row := range result.GetRows() {
		cells, err := splitRow(row)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(p.tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
		p.rows++
	}
	p.affected += result.GetRowsAffected()

	return nil
}

func (p *printer) finish() error {
	if err := p.tw.Flush(); err != nil {
		return err
	}
	if p.rows == 0 && p.affected > 0 {
		_, err := fmt.Fprintf(p.tw, "(%d rows affected)\n", p.affected)
		if err != nil {
			return err
		}

		return p.tw.Flush()
	}
	_, err := fmt.Fprintf(p.tw, "(%d rows)\n", p.rows)
	if err != nil {
		return err
	}

	return p.tw.Flush()
}

// splitRow cuts concatenated row values by lengths, negative length is NULL
func splitRow(row *querypb.Row) ([]string, error) {
	cells := make([]string, 0, len(row.GetLengths()))
	values := row.GetValues()
	for _, length := range row.GetLengths() {
		if length < 0 {
			cells = append(cells, "NULL")

			continue
		}
		if int64(len(values)) < length {
			return nil, fmt.Errorf("row values are shorter than lengths: %d < %d", len(values), length)
		}
		cells = append(cells, string(values[:length]))
		values = values[length:]
	}

	return cells, nil
}
