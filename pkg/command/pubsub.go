package command

import (
	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

func init() {
	register("PUBLISH", 2, 2, false, buildPublish)
}

func buildPublish(args [][]byte) (*Command, error) {
	channel := string(args[0])
	message := args[1]
	return &Command{apply: func(_ *store.Store, br *broker.Broker) resp.Frame {
		n := br.Publish(channel, message)
		return resp.NewInteger(n)
	}}, nil
}
