package cli

import (
	goflag "flag"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes every environment variable bound to a flag.
const EnvPrefix = "PATHLAB"

// AddLoggingFlags registers klog's flags (--v, --logtostderr, ...) on fs.
func AddLoggingFlags(fs *pflag.FlagSet) {
	gofs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(gofs)
	fs.AddGoFlagSet(gofs)
}

// BindEnv returns a viper instance resolving every flag of cmd from, in
// order: an explicitly set flag, PATHLAB_<FLAG>, the flag default.
func BindEnv(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	return v, nil
}
