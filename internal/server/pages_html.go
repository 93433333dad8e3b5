package server

const homeHTMLHead = `<!DOCTYPE html>
<html>
<head><title>Class Quiz Challenge</title></head>
<body>
<h1>Class Quiz Challenge</h1>
<button onclick="createGame()">New game</button>
<script>
async function createGame() {
  const resp = await fetch('/api/games', {method: 'POST'});
  const body = await resp.json();
  sessionStorage.setItem('token-' + body.game_id, body.control_token);
  window.location = '/games/' + body.game_id;
}
</script>
`

const homeHTMLTail = `</body>
</html>
`

// gamePageHTML is the play surface: it mirrors websocket snapshots into the
// line canvas and widget row, and forwards pointer gestures as drag events.
const gamePageHTML = `<!DOCTYPE html>
<html>
<head><title>Class Quiz Challenge</title>
<style>
#board { position: relative; width: 640px; height: 480px; border: 1px solid #ccc; }
.slot { position: absolute; width: 120px; height: 48px; border: 1px solid #888;
        display: flex; align-items: center; justify-content: center; user-select: none; }
#widgets { margin: 8px 0; }
</style>
</head>
<body>
<div id="widgets">
  <span id="timer"></span> &middot; <span id="coins"></span> &middot;
  <span id="round"></span> <progress id="progress" max="1" value="0"></progress>
  <button id="checkBtn" disabled onclick="post('check')">Check</button>
</div>
<div id="board"><svg id="linesSvg" width="640" height="480"></svg></div>
<div id="panel"></div>
<script>
const gameID = "{{GAME_ID}}";
const token = sessionStorage.getItem('token-' + gameID) || '';
const svgNS = 'http://www.w3.org/2000/svg';

function post(action, extra) {
  return fetch('/api/games/' + gameID + '/' + action, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(Object.assign({control_token: token}, extra || {})),
  });
}

function drag(action, target, x, y) {
  return post('drag', {action: action, target: target || '', x: x || 0, y: y || 0});
}

function slotDiv(id, text, anchor) {
  const div = document.createElement('div');
  div.className = 'slot';
  div.id = id;
  div.textContent = text;
  div.style.left = (anchor.x - 60) + 'px';
  div.style.top = (anchor.y - 24) + 'px';
  div.onpointerdown = () => drag('start', id);
  div.onpointerup = () => { drag('drop', id).then(() => drag('end')); };
  return div;
}

function render(snap) {
  document.getElementById('timer').textContent = snap.remaining + 's';
  document.getElementById('coins').textContent = snap.coins + ' coins';
  document.getElementById('round').textContent = 'round ' + snap.round + '/' + snap.total_rounds;
  document.getElementById('progress').value = snap.progress;
  document.getElementById('checkBtn').disabled = !snap.can_check;

  const board = document.getElementById('board');
  board.querySelectorAll('.slot').forEach(el => el.remove());
  snap.pictures.forEach(p => board.appendChild(slotDiv(p.id, p.image, p.anchor)));
  snap.labels.forEach(l => board.appendChild(slotDiv(l.id, l.text, l.anchor)));

  const svg = document.getElementById('linesSvg');
  svg.innerHTML = '';
  snap.lines.forEach(line => {
    const el = document.createElementNS(svgNS, 'line');
    el.setAttribute('x1', line.from.x); el.setAttribute('y1', line.from.y);
    el.setAttribute('x2', line.to.x);   el.setAttribute('y2', line.to.y);
    el.setAttribute('stroke', 'black'); el.setAttribute('stroke-width', '3');
    svg.appendChild(el);
  });

  const panel = document.getElementById('panel');
  if (!snap.result) { panel.innerHTML = ''; return; }
  let html = '<h2>' + snap.result.status + '</h2>';
  if (snap.result.status === 'round-won') {
    html += '<p>' + '★'.repeat(snap.result.stars) + '</p>';
    html += '<button onclick="post(\'next\')">Next</button>';
    if (snap.result.repeatable) html += ' <button onclick="post(\'repeat\')">Repeat</button>';
  } else if (snap.result.status === 'round-lost') {
    html += '<button onclick="post(\'retry\')">Retry</button>';
  } else if (snap.result.status === 'game-over') {
    html += '<p>Final score: ' + snap.final_score + '</p>';
    html += '<button onclick="post(\'again\')">Play again</button>';
  }
  panel.innerHTML = html;
}

document.addEventListener('pointermove', ev => {
  const rect = document.getElementById('board').getBoundingClientRect();
  if (ev.buttons === 1) drag('move', '', ev.clientX - rect.left, ev.clientY - rect.top);
});

const proto = window.location.protocol === 'https:' ? 'wss' : 'ws';
const ws = new WebSocket(proto + '://' + window.location.host + '/ws/games/' + gameID);
ws.onmessage = ev => render(JSON.parse(ev.data));

fetch('/api/games/' + gameID).then(r => r.json()).then(snap => {
  render(snap);
  if (snap.status === 'idle' && token) post('start');
});
</script>
</body>
</html>
`
