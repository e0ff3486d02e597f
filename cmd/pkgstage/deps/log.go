package deps

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pkgstage.run/cmd/pkgstage/rootcmd"
)

func ProvideLogFactory(streams rootcmd.IOStreams) LogFactory {
	return &ZapLogFactory{
		streams: streams,
	}
}

type LogFactory interface {
	Logger() logr.Logger
}

type ZapLogFactory struct {
	streams rootcmd.IOStreams
}

func (f *ZapLogFactory) Logger() logr.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(f.streams.ErrOut),
		zapcore.InfoLevel,
	)

	return zapr.NewLogger(zap.New(core))
}
