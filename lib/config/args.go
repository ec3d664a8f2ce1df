package config

type Args struct {
	Source string `arg:"positional,required" help:"connection string of the database to migrate away from (libpq keyword/value or URI form)"`
	Target string `arg:"positional" help:"connection string of the database to migrate towards; omit to dump the source schema instead"`

	Verbose []bool `arg:"-v" help:"see more detail (verbose). -vvv is not advised for normal use."`
	Quiet   []bool `arg:"-q" help:"see less detail (quiet)."`
	Debug   bool   `arg:"--debug" help:"display extended information about errors. Automatically implies -vv."`
	// Handled by go-arg
	// Help bool `arg:"-h,--help" help:"show this usage information"`

	Password bool `arg:"-W,--password" help:"prompt for a password and append it to each connection string"`
}
