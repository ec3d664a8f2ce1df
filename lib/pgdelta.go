package lib

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"github.com/pgdelta/pgdelta/lib/config"
	"github.com/pgdelta/pgdelta/lib/ir"
	"github.com/pgdelta/pgdelta/lib/output"
	"github.com/pgdelta/pgdelta/lib/pgsql8"
	"github.com/pgdelta/pgdelta/lib/pgsql8/live"
	"github.com/pgdelta/pgdelta/lib/util"
)

var Version = "1.0.0"

type PgDelta struct {
	logger zerolog.Logger
}

func NewPgDelta() *PgDelta {
	return &PgDelta{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

func (self *PgDelta) ArgParse() {
	args := &config.Args{}
	arg.MustParse(args)

	self.setVerbosity(args)

	self.Notice("pgdelta Version %s", Version)

	source := args.Source
	target := args.Target
	if args.Password {
		pass, err := util.PromptPassword("Password: ")
		self.FatalIfError(err, "could not read password")
		source = appendPassword(source, pass)
		if target != "" {
			target = appendPassword(target, pass)
		}
	}

	if target == "" {
		self.doDump(source)
	} else {
		self.doDiff(source, target)
	}
}

// doDump prints the full DDL of one database schema to stdout.
func (self *PgDelta) doDump(dsn string) {
	snap := self.loadSnapshot(dsn)

	seg := output.NewSegmenter(pgsql8.NewQuoter())
	seg.WriteSql(pgsql8.DumpSnapshot(snap)...)
	err := seg.WriteTo(os.Stdout)
	self.FatalIfError(err, "could not write dump")
}

// doDiff prints the statements that migrate the source database's
// schema to match the target's.
func (self *PgDelta) doDiff(sourceDsn, targetDsn string) {
	self.Info("Loading source schema snapshot")
	source := self.loadSnapshot(sourceDsn)
	self.Info("Loading target schema snapshot")
	target := self.loadSnapshot(targetDsn)

	seg := output.NewSegmenter(pgsql8.NewQuoter())
	seg.WriteSql(pgsql8.DiffSnapshots(source, target)...)
	err := seg.WriteTo(os.Stdout)
	self.FatalIfError(err, "could not write migration")
}

func (self *PgDelta) loadSnapshot(dsn string) *ir.Snapshot {
	conn, err := live.NewConnection(dsn)
	self.FatalIfError(err, "could not connect to database")
	defer conn.Disconnect()

	builder := live.NewBuilder(live.NewIntrospector(conn), self)
	snap, err := builder.Build()
	self.FatalIfError(err, "could not read database schema")

	if err := snap.Validate(); err != nil {
		self.Warning("schema snapshot failed validation:\n%v", err)
	}
	return snap
}

// appendPassword adds a password in keyword/value form. Connection
// strings in URI form should carry the password in the URI instead.
func appendPassword(dsn, pass string) string {
	return fmt.Sprintf("%s password=%s", dsn, pass)
}

var _ util.Logger = &PgDelta{}

func (self *PgDelta) FatalIfError(err error, s string, args ...interface{}) {
	if err != nil {
		args = append(args, err)
		self.Fatal(s+": %v", args...)
	}
}
func (self *PgDelta) Fatal(s string, args ...interface{}) {
	self.logger.Fatal().Msgf(s, args...)
}
func (self *PgDelta) Warning(s string, args ...interface{}) {
	self.logger.Warn().Msgf(s, args...)
}
func (self *PgDelta) Notice(s string, args ...interface{}) {
	// TODO(go,nth) differentiate between notice and info
	self.Info(s, args...)
}
func (self *PgDelta) Info(s string, args ...interface{}) {
	self.logger.Info().Msgf(s, args...)
}
func (self *PgDelta) Trace(s string, args ...interface{}) {
	self.logger.Trace().Msgf(s, args...)
}

func (self *PgDelta) setVerbosity(args *config.Args) {
	// remember, lower level is higher verbosity
	// we're abusing the fact that zerolog.LogLevel is defined as an int8
	level := zerolog.InfoLevel

	if args.Debug {
		level = zerolog.TraceLevel
	}

	for _, v := range args.Verbose {
		if v {
			level -= 1
		} else {
			level += 1
		}
	}
	for _, q := range args.Quiet {
		if q {
			level += 1
		} else {
			level -= 1
		}
	}

	// clamp it to valid values
	if level > zerolog.PanicLevel {
		level = zerolog.PanicLevel
	}
	if level < zerolog.TraceLevel {
		level = zerolog.TraceLevel
	}

	self.logger = self.logger.Level(level)
}
