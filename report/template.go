package report

import "html/template"

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Mutation Impact Report</title>
    <script src="https://3Dmol.org/build/3Dmol-min.js"></script>
    <style>
        body {
            background-color: #0e0e0e;
            color: white;
            font-family: 'Segoe UI', sans-serif;
            display: flex;
            flex-direction: row;
            gap: 15px;
            padding: 20px;
        }
        .viewer {
            width: 40%;
            height: 500px;
            border: 1px solid #444;
            border-radius: 10px;
            position: relative;
        }
        .report {
            width: 25%;
            background-color: #1a1a1a;
            border-radius: 12px;
            padding: 15px;
            box-shadow: 0 0 10px rgba(255,255,255,0.1);
        }
        h2, h3 {
            text-align: center;
            color: #00bfff;
        }
        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 10px;
        }
        td {
            border-bottom: 1px solid #333;
            padding: 6px;
        }
        td:first-child {
            color: #00bfff;
        }
        .mismatch {
            color: #ff6060;
        }
    </style>
</head>
<body>
{{- if .Structure}}
    <div id="viewer1" class="viewer"></div>
    <div id="viewer2" class="viewer"></div>
{{- end}}
    <div class="report">
        <h2>Mutation Report</h2>
        <table>
            <tr><td>Original Codon</td><td>{{.OriginalCodon}}</td></tr>
            <tr><td>Mutated Codon</td><td>{{.MutatedCodon}}</td></tr>
            <tr><td>Original AA</td><td>{{.OriginalAA}}</td></tr>
            <tr><td>Mutated AA</td><td>{{.MutatedAA}}</td></tr>
            <tr><td>Type</td><td>{{.Type}}</td></tr>
{{- if .Code}}
            <tr><td>Genetic Code</td><td>{{.Code}}</td></tr>
{{- end}}
        </table>
        <h3>&Delta; Biochemical Properties</h3>
        <table>
{{- range .Deltas}}
            <tr><td>{{.Name}}</td><td>{{.Value}}</td></tr>
{{- else}}
            <tr><td>unavailable</td><td>no properties for {{.OriginalAA}} or {{.MutatedAA}}</td></tr>
{{- end}}
        </table>
{{- with .Structure}}
        <h3>Structure {{.ID}}, residue {{.Residue}}</h3>
        <table>
{{- range .Sites}}
            <tr><td>Chain {{.Chain}}</td><td{{if not .Matches}} class="mismatch"{{end}}>{{.Residue}}</td></tr>
{{- else}}
            <tr><td>Residue {{.Residue}}</td><td>not found in structure</td></tr>
{{- end}}
        </table>
{{- end}}
    </div>
{{- with .Structure}}

    <script>
        var pdb = {{.Data}};
        var site = {resi: {{.Residue}}};

        var v1 = $3Dmol.createViewer("viewer1", {backgroundColor: "black"});
        v1.addModel(pdb, "pdb");
        v1.setStyle({}, {cartoon: {color: "spectrum"}});
        v1.addStyle(site, {stick: {color: "green", radius: 0.4}});
        v1.addLabel("Original", {fontColor: "white", backgroundColor: "black", position: {x: 0, y: -10, z: 0}});
        v1.zoomTo();
        v1.render();

        var v2 = $3Dmol.createViewer("viewer2", {backgroundColor: "black"});
        v2.addModel(pdb, "pdb");
        v2.setStyle({}, {cartoon: {color: "spectrum"}});
        v2.addStyle(site, {stick: {color: "red", radius: 0.4}});
        v2.addArrow({start: {x: 0, y: 0, z: 0}, end: {x: 3, y: 3, z: 3}, color: "red", radius: 0.3});
        v2.addLabel("Mutated Site", {position: {x: 3, y: 3, z: 3}, backgroundColor: "black", fontColor: "red", fontSize: 16});
        v2.addLabel("Mutated", {fontColor: "white", backgroundColor: "black", position: {x: 0, y: -10, z: 0}});
        v2.zoomTo();
        v2.render();
    </script>
{{- end}}
</body>
</html>
`))
