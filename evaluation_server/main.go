package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	console "github.com/asynkron/goconsole"
	"github.com/asynkron/protoactor-go/actor"

	"softmaxreg/evaluation_server/actors"
	"softmaxreg/messages"
)

var rootContext *actor.RootContext
var evaluationActor *actor.PID

func main() {
	actorSystem := actor.NewActorSystem()
	decider := func(reason interface{}) actor.Directive {
		fmt.Println("handling failure for child")
		return actor.RestartDirective
	}
	supervisor := actor.NewOneForOneStrategy(20, 1000, decider)
	rootContext = actorSystem.Root

	props := actor.PropsFromProducer(actors.NewEvaluationActor, actor.WithSupervisor(supervisor))
	evaluationActor = rootContext.Spawn(props)

	http.HandleFunc("/evaluate", handleEvaluate)
	go func() {
		log.Fatal(http.ListenAndServe(":8080", nil))
	}()
	console.ReadLine()
}

func handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req messages.EvaluateLoss
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rootContext.RequestFuture(evaluationActor, &req, 20*time.Second).Result()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	switch res := result.(type) {
	case *messages.LossGradient:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	case *messages.EvaluationFailed:
		http.Error(w, res.Reason, http.StatusBadRequest)
	default:
		http.Error(w, "unexpected reply from evaluation actor", http.StatusInternalServerError)
	}
}
