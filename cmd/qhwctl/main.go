package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"

	"github.com/qforge-labs/qhardware/common"
	"github.com/qforge-labs/qhardware/core"
	"github.com/qforge-labs/qhardware/devices"
	"github.com/qforge-labs/qhardware/log"
)

var versionByBuildFlag string
var parser *flags.Parser
var app *App

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Printf("Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	} else {
		fmt.Println("Found \".env\" file. Environment variables are preferred, " +
			"but non-conflicting variables are those in the \".env\" file.")
	}
	app = &App{}
	setParser(app)
}

type App struct {
	Conf *core.Conf
}

func setParser(app *App) {
	parser = flags.NewParser(app, flags.Default)
	parser.ShortDescription = "qhw device tool"
	parser.LongDescription = "inspect and export quantum hardware device models."
	parser.AddCommand("inspect", "print device", "build the device from its setting file and print it as JSON", newInspectCmd())
	parser.AddCommand("export", "export device", "build the device from its setting file and write its binary encoding", newExportCmd())
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Printf("failed to parse flags, because %s\n", err)
		}
		os.Exit(code)
	}
}

func main() {
	parse()
}

func buildDevice(conf *core.Conf) (devices.Device, error) {
	logger := log.SetZap(conf)
	defer logger.Sync()
	core.SetVersion(conf, versionByBuildFlag)

	ds, err := devices.LoadDeviceSetting(conf.DeviceSettingPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to load device setting/reason:%s", err))
		return nil, err
	}
	return ds.BuildDevice()
}

func deviceToJSON(d devices.Device) ([]byte, error) {
	switch dev := d.(type) {
	case *devices.AllToAllDevice:
		return dev.ToJSON()
	case *devices.SquareLatticeDevice:
		return dev.ToJSON()
	case *devices.GenericDevice:
		return dev.ToJSON()
	default:
		return nil, fmt.Errorf("%T is an unknown device type", d)
	}
}

func deviceToBincode(d devices.Device) ([]byte, error) {
	switch dev := d.(type) {
	case *devices.AllToAllDevice:
		return dev.ToBincode()
	case *devices.SquareLatticeDevice:
		return dev.ToBincode()
	case *devices.GenericDevice:
		return dev.ToBincode()
	default:
		return nil, fmt.Errorf("%T is an unknown device type", d)
	}
}

type inspectCmd struct{}

func newInspectCmd() *inspectCmd {
	return &inspectCmd{}
}

func (c *inspectCmd) Execute(args []string) error {
	d, err := buildDevice(app.Conf)
	if err != nil {
		return err
	}
	blob, err := deviceToJSON(d)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to serialize device/reason:%s", err))
		return err
	}
	zap.L().Debug(fmt.Sprintf("device has %d two-qubit edges", len(d.TwoQubitEdges())))
	fmt.Println(string(pretty.Pretty(blob)))
	return nil
}

type exportCmd struct {
	Out string `long:"out" description:"output file path" default:"./device.qhw"`
}

func newExportCmd() *exportCmd {
	return &exportCmd{}
}

func (c *exportCmd) Execute(args []string) error {
	d, err := buildDevice(app.Conf)
	if err != nil {
		return err
	}
	if err := common.IsDirWritable(filepath.Dir(c.Out)); err != nil {
		zap.L().Error(fmt.Sprintf("output dir is not writable/reason:%s", err))
		return err
	}
	blob, err := deviceToBincode(d)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to serialize device/reason:%s", err))
		return err
	}
	if err := os.WriteFile(c.Out, blob, 0o644); err != nil {
		zap.L().Error(fmt.Sprintf("failed to write %s/reason:%s", c.Out, err))
		return err
	}
	zap.L().Info(fmt.Sprintf("wrote %d bytes to %s", len(blob), c.Out))
	return nil
}
