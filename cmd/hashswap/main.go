package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/urfave/cli/v2"
)

var (
	hashswapDataDir = btcutil.AppDataDir("hashswap-cli", false)
	statePath       = path.Join(hashswapDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "hashswap CLI"
	app.Usage = "Command line interface for the hashswapd daemon"
	app.Commands = append(
		app.Commands,
		&cliConfig,
		&quote,
		&commit,
		&status,
		&listswaps,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return nil, fmt.Errorf("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(hashswapDataDir); os.IsNotExist(err) {
		os.Mkdir(hashswapDataDir, os.ModeDir|0755)
	}

	currentData, _ := getState()
	if currentData == nil {
		currentData = map[string]string{}
	}
	for key, value := range data {
		currentData[key] = value
	}

	serialized, err := json.Marshal(currentData)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(statePath, serialized, 0644)
}

func daemonURL() (string, error) {
	state, err := getState()
	if err != nil {
		return "", err
	}
	addr, ok := state["daemon_url"]
	if !ok {
		return "", fmt.Errorf("missing daemon url: try 'config init'")
	}
	return addr, nil
}

func postJSON(endpoint string, body interface{}) (map[string]interface{}, error) {
	baseURL, err := daemonURL()
	if err != nil {
		return nil, err
	}

	serialized, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(
		baseURL+endpoint, "application/json", bytes.NewReader(serialized),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func getJSON(endpoint string) (interface{}, error) {
	baseURL, err := daemonURL()
	if err != nil {
		return nil, err
	}

	resp, err := http.Get(baseURL + endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		decoded, err := decodeResponse(resp)
		if err != nil {
			return nil, err
		}
		return decoded, nil
	}

	var decoded interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

func decodeResponse(resp *http.Response) (map[string]interface{}, error) {
	decoded := map[string]interface{}{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	if errBody, ok := decoded["error"].(map[string]interface{}); ok {
		return nil, fmt.Errorf(
			"daemon error [%v]: %v", errBody["code"], errBody["message"],
		)
	}
	return decoded, nil
}

func printRespJSON(resp interface{}) {
	serialized, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(serialized))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[hashswap] %v\n", err)
	os.Exit(1)
}
