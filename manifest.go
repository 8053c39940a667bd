package main

import (
	"encoding/json"
	"fmt"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"

	"github.com/solkit/anchorman/runner"
)

func onManifest(cmd *cli.Cmd) {
	queryExpr := cmd.StringArg("QUERY", "", "Optional jq expression to filter the manifest.")

	cmd.Spec = "[QUERY]"

	cmd.Action = func() {
		m := runner.NewManifest(*deployDir)

		if len(*queryExpr) > 0 {
			results, err := m.Query(*queryExpr)
			if err != nil {
				log.Fatalln(err)
			}

			for _, result := range results {
				cmdOut, _ := json.MarshalIndent(result, "", "\t")
				fmt.Println(string(cmdOut))
			}

			return
		}

		file, err := m.Load()
		if err != nil {
			log.Fatalln(err)
		}

		cmdOut, _ := json.MarshalIndent(file, "", "\t")
		fmt.Println(string(cmdOut))
	}
}
