package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

type details struct {
	ConfigPathEnv string `json:"config_path_env,omitempty"`
	Backend       string `json:"backend"`
	Location      string `json:"location"`
	Capacity      int    `json:"capacity"`
	Habits        int    `json:"habits"`
	LogFile       string `json:"log_file,omitempty"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("info: no service configured")
	}

	habits, err := n.Service.Habits(ctx)
	if err != nil {
		return err
	}
	d := details{
		ConfigPathEnv: os.Getenv("HABIT_CONFIG_PATH"),
		Backend:       n.Config.Backend(),
		Location:      n.Service.Persistence.Location(),
		Capacity:      n.Config.Capacity(),
		Habits:        len(habits),
		LogFile:       n.Config.LogFile(),
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		b, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if d.ConfigPathEnv != "" {
		tbl.AddRow("HABIT_CONFIG_PATH", d.ConfigPathEnv)
	} else {
		tbl.AddRow("HABIT_CONFIG_PATH", "not set")
	}
	tbl.AddRow("Backend", d.Backend)
	tbl.AddRow("Location", d.Location)
	tbl.AddRow("Habits", fmt.Sprintf("%d of %d", d.Habits, d.Capacity))
	if d.LogFile != "" {
		tbl.AddRow("Log file", d.LogFile)
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
